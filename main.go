package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"smartpark/handlers"
	"smartpark/models"
	"smartpark/routes"
	"smartpark/services"
	"smartpark/store"
	"smartpark/utils"
)

// 預設的模擬時間點：所有狀態與時長計算都以這個時刻為「現在」
const defaultSimNow = "2025-12-15 16:00"

func main() {
	// 載入 .env 檔案
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using default environment variables: %v", err)
	}

	// 初始化 JWT 密鑰
	if err := utils.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	// 初始化儀表板密碼閘門
	if err := handlers.InitAuth(); err != nil {
		log.Fatalf("Failed to initialize dashboard auth: %v", err)
	}

	// 解析模擬時間點
	simNow, err := loadSimNow()
	if err != nil {
		log.Fatalf("Failed to parse simulated time: %v", err)
	}
	log.Printf("Simulated reference instant: %s", simNow.Format(models.TimeLayout))

	// 解析每小時費率
	rate, err := loadHourlyRate()
	if err != nil {
		log.Fatalf("Failed to parse hourly rate: %v", err)
	}
	log.Printf("Hourly rate set to %.2f EUR", rate)

	// 載入停車紀錄（啟動後唯讀）
	dataFile := os.Getenv("PARKDATA_FILE")
	if dataFile == "" {
		dataFile = "parkdata.json"
	}
	st, err := store.Load(dataFile)
	if err != nil {
		log.Fatalf("Failed to load parking records: %v", err)
	}

	// 初始化 AI 助理客戶端
	apiKey := os.Getenv("PARK_AI_API")
	if apiKey == "" {
		log.Fatalf("PARK_AI_API environment variable is not set")
	}
	assistant := services.NewAssistantClient(apiKey, os.Getenv("PARK_AI_MODEL"), os.Getenv("PARK_AI_ENDPOINT"), simNow)

	// 注入儀表板依賴
	handlers.Init(st, assistant, simNow, rate)

	// 設置 Gin 模式為 release
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)
	log.Printf("Gin mode set to %s", ginMode)

	// 初始化 Gin 路由器
	r := gin.Default()

	// 創建一個 API 路由組
	api := r.Group("/api")
	{
		routes.Path(api)
	}

	// 啟動定時任務：定期記錄在場車輛數（唯讀，不動資料）
	c := cron.New()
	_, err = c.AddFunc("@every 10m", func() {
		active := services.ActiveVehicles(st.Records())
		log.Printf("Occupancy snapshot: %d of %d vehicles currently active", len(active), st.Len())
	})
	if err != nil {
		log.Fatalf("Failed to schedule occupancy snapshot cron job: %v", err)
	}
	c.Start()
	log.Println("Cron jobs started")

	// 啟動伺服器
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadSimNow 讀取模擬時間點，可用 PARK_SIM_NOW 覆寫
func loadSimNow() (time.Time, error) {
	value := os.Getenv("PARK_SIM_NOW")
	if value == "" {
		value = defaultSimNow
	}
	return time.Parse(models.TimeLayout, value)
}

// loadHourlyRate 讀取每小時費率，可用 PARK_HOURLY_RATE 覆寫
func loadHourlyRate() (float64, error) {
	value := os.Getenv("PARK_HOURLY_RATE")
	if value == "" {
		return services.DefaultHourlyRate, nil
	}
	return strconv.ParseFloat(value, 64)
}
