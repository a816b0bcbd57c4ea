package usecase

import (
	"fmt"
	"time"

	"easytrack_backend/internal/feature/market/domain/entity"
)

// DateLayout はチャート期間の境界日付のシリアライズ形式です。
const DateLayout = "2006-01-02"

// epochFloor は"Max"期間の開始日として使う固定の下限日付です。
var epochFloor = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// ResolvePeriod はシンボリックな期間トークンを基準日に対する具体的な
// TimeWindowに変換します。未知のトークンは黙って1Yルールにフォールバック
// し、この関数がエラーを返すことはありません。
func ResolvePeriod(token string, now time.Time) entity.TimeWindow {
	var start time.Time
	switch token {
	case "1M":
		start = now.AddDate(0, -1, 0)
	case "6M":
		start = now.AddDate(0, -6, 0)
	case "1Y":
		start = now.AddDate(-1, 0, 0)
	case "5Y":
		start = now.AddDate(-5, 0, 0)
	case "Max":
		start = epochFloor
	default:
		// 未知・未指定のトークンは1Y扱い
		start = now.AddDate(-1, 0, 0)
	}
	return entity.TimeWindow{Start: start, End: now}
}

// ResolveWindow はリクエストのチャート期間を解決します。
// 明示的なperiod1/period2（YYYY-MM-DD）はトークンより常に優先され、
// start <= end の検証なしでそのまま通します。明示指定が片側だけの場合、
// 残りの境界はトークン解決（endは基準日）で補われます。
func ResolveWindow(token, start, end string, now time.Time) (entity.TimeWindow, error) {
	w := ResolvePeriod(token, now)
	if end != "" {
		t, err := time.Parse(DateLayout, end)
		if err != nil {
			return entity.TimeWindow{}, fmt.Errorf("parse period2 %q: %w", end, err)
		}
		w.End = t
	}
	if start != "" {
		t, err := time.Parse(DateLayout, start)
		if err != nil {
			return entity.TimeWindow{}, fmt.Errorf("parse period1 %q: %w", start, err)
		}
		w.Start = t
	}
	return w, nil
}
