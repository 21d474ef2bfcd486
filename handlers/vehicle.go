package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartpark/models"
	"smartpark/services"
	"smartpark/store"
)

// 儀表板的共用依賴：啟動時注入一次，之後唯讀
var (
	recordStore *store.Store
	assistant   *services.AssistantClient
	simNow      time.Time
	hourlyRate  float64
)

// Init 注入停車紀錄、助理客戶端與模擬時間點
func Init(st *store.Store, client *services.AssistantClient, ref time.Time, rate float64) {
	recordStore = st
	assistant = client
	simNow = ref
	hourlyRate = rate
}

// QuickQuestions 快速提問按鈕用的預設問題清單
var QuickQuestions = []string{
	"Is the vehicle currently in the parking lot?",
	"Since when has this vehicle been parked here?",
	"What is the parking price so far?",
}

// lookupVehicle 以車牌找出紀錄並完成計算與狀態解析
func lookupVehicle(plate string) (models.VehicleRecord, models.ParkingComputation, models.VehicleStatus, error) {
	rec, ok := recordStore.Get(plate)
	if !ok {
		return models.VehicleRecord{}, models.ParkingComputation{}, models.VehicleStatus{}, models.ErrPlateNotFound
	}

	comp, err := services.ComputeParking(rec.EntryTime, rec.ExitTime, simNow, hourlyRate)
	if err != nil {
		return models.VehicleRecord{}, models.ParkingComputation{}, models.VehicleStatus{}, err
	}

	return rec, comp, services.ResolveStatus(rec, simNow), nil
}

// GetVehicle 查詢單一車輛的停車資料
func GetVehicle(c *gin.Context) {
	rec, comp, status, err := lookupVehicle(c.Param("plate"))
	if err != nil {
		respondLookupError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", models.NewVehicleDetailResponse(rec, comp, status))
}

// AskAssistant 對單一車輛提出自然語言問題，由 AI 助理依事實回答
func AskAssistant(c *gin.Context) {
	var input struct {
		Question string `json:"question" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "請提供問題", err.Error())
		return
	}

	rec, comp, status, err := lookupVehicle(c.Param("plate"))
	if err != nil {
		respondLookupError(c, err)
		return
	}

	envelope := services.BuildFactEnvelope(rec, comp, status, simNow)

	answer, err := assistant.Ask(c.Request.Context(), input.Question, envelope)
	if err != nil {
		log.Printf("Assistant call failed for plate %s: %v", rec.Plate, err)
		ErrorResponseWithCode(c, http.StatusBadGateway, "AI 助理暫時無法使用", err.Error(), "ERR_ASSISTANT_UNAVAILABLE")
		return
	}

	// 核對回答中的數字是否都來自事實區塊，可疑的以警告附帶回傳
	warnings := services.AuditAnswer(answer, envelope)
	if len(warnings) > 0 {
		log.Printf("Assistant answer for plate %s contains unverified numbers: %v", rec.Plate, warnings)
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", models.AskResponse{
		Vehicle:  models.NewVehicleDetailResponse(rec, comp, status),
		Question: input.Question,
		Answer:   answer,
		Facts:    envelope,
		Warnings: warnings,
	})
}

// GetQuickQuestions 回傳預設問題清單
func GetQuickQuestions(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "查詢成功", QuickQuestions)
}

// GetActiveVehicles 查詢還在場內（無出場紀錄）的車輛
func GetActiveVehicles(c *gin.Context) {
	active := services.ActiveVehicles(recordStore.Records())

	resp := make([]models.ActiveVehicleResponse, len(active))
	for i, rec := range active {
		resp[i] = rec.ToActiveResponse()
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", resp)
}

// GetTodayEntries 查詢今天（模擬日期）入場的車輛
func GetTodayEntries(c *gin.Context) {
	entries := services.EntriesOn(recordStore.Records(), simNow.Format("2006-01-02"))

	resp := make([]models.ActiveVehicleResponse, len(entries))
	for i, rec := range entries {
		resp[i] = rec.ToActiveResponse()
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", resp)
}

// GetLongestParked 查詢停最久的車輛
func GetLongestParked(c *gin.Context) {
	rec, comp, err := services.LongestParked(recordStore.Records(), simNow, hourlyRate)
	if err != nil {
		if errors.Is(err, models.ErrNoRecords) {
			ErrorResponse(c, http.StatusNotFound, "目前沒有停車紀錄", err.Error())
			return
		}
		log.Printf("Failed to compute longest parked vehicle: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "查詢失敗", err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", models.NewLongestParkedResponse(rec, comp))
}

// respondLookupError 把核心錯誤對應到 HTTP 狀態
func respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrPlateNotFound):
		ErrorResponseWithCode(c, http.StatusNotFound, "查無此車牌", err.Error(), "ERR_PLATE_NOT_FOUND")
	case errors.Is(err, models.ErrNegativeDuration):
		log.Printf("Data integrity problem: %v", err)
		ErrorResponseWithCode(c, http.StatusUnprocessableEntity, "停車紀錄異常", err.Error(), "ERR_BAD_RECORD")
	default:
		log.Printf("Vehicle lookup failed: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "查詢失敗", err.Error())
	}
}
