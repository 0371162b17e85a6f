package settlement

import "context"

// RevenueSource fetches per-shift cash-register totals for a store and an
// inclusive date range. Implementations must be idempotent: repeating a fetch
// with the same range returns equivalent data barring upstream changes.
type RevenueSource interface {
	FetchRevenue(ctx context.Context, storeID string, period Period) ([]ShiftRevenue, error)
}

// AttendanceSource fetches per-employee attendance records for an inclusive
// date range.
type AttendanceSource interface {
	FetchAttendance(ctx context.Context, period Period) ([]AttendanceRecord, error)
}

// ProfileStore supplies pay profiles keyed by employee ID. The engine treats
// the returned profiles as read-only.
type ProfileStore interface {
	GetProfiles(ctx context.Context) ([]PayProfile, error)
}

// Service produces settlement reports for a pay period.
type Service interface {
	SettlementReport(ctx context.Context, req ReportRequest) (ReportResponse, error)
}
