package redis

import (
	"context"
	"testing"
	"time"

	"github.com/iceghosttth/bkalendar/internal/calendar"
)

func mondayDay(y int, m time.Month, d int) int64 {
	return calendar.EpochDay(time.Date(y, m, d, 12, 0, 0, 0, time.UTC).UnixMilli(), calendar.UTC)
}

func TestWeekViewKeyDistinctAcrossYears(t *testing.T) {
	// 2023-03-06 and 2024-03-04 are both Mondays of ISO week 10. A key on
	// the week number alone would collide; the epoch day keeps them apart.
	a := weekViewKey(1, mondayDay(2023, time.March, 6), 3)
	b := weekViewKey(1, mondayDay(2024, time.March, 4), 3)
	if a == b {
		t.Fatalf("keys for week 10 of different years collide: %q", a)
	}
}

func TestWeekViewKeyDistinctPerUserAndWeekday(t *testing.T) {
	d := mondayDay(2023, time.March, 6)
	if weekViewKey(1, d, 3) == weekViewKey(2, d, 3) {
		t.Fatal("keys of different users collide")
	}
	if weekViewKey(1, d, 3) == weekViewKey(1, d, 4) {
		t.Fatal("keys of different weekdays collide")
	}
}

func TestCacheIsNoOpWithoutClient(t *testing.T) {
	Rdb = nil
	ctx := context.Background()
	d := mondayDay(2023, time.March, 6)
	CacheWeekView(ctx, 1, d, 3, []byte("{}"))
	if got := GetCachedWeekView(ctx, 1, d, 3); got != nil {
		t.Fatalf("cache without a client returned %q, want nil", got)
	}
	InvalidateWeekViews(ctx, 1)
}
