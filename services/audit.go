package services

import (
	"fmt"
	"regexp"
	"strings"
)

// 抓出回答裡的數字，時間（12:30）與小數（3.00）視為單一數值
var numberPattern = regexp.MustCompile(`\d+(?:[.,:]\d+)*`)

// AuditAnswer 核對助理回答中的數字是否都出現在事實區塊裡。
// 提示詞只能盡力約束模型，這裡補上可驗證的檢查：
// 回答不會被改寫，發現來路不明的數字時以警告回報給呼叫端。
func AuditAnswer(answer, envelope string) []string {
	var warnings []string
	seen := make(map[string]bool)

	for _, token := range numberPattern.FindAllString(answer, -1) {
		if seen[token] {
			continue
		}
		seen[token] = true
		if !strings.Contains(envelope, token) {
			warnings = append(warnings, fmt.Sprintf("answer contains %q which is not among the provided facts", token))
		}
	}
	return warnings
}
