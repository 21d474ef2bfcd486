package services

import (
	"strings"
	"unicode"
)

// NormalizePlate 正規化車牌：移除所有空白字元並轉為大寫。
// 建立索引與處理使用者輸入都走同一條路，確保查得到。
func NormalizePlate(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
