package attendance

import "context"

//go:generate mockgen -source=attendance_gateway.go -destination=mock/attendance_gateway_mock.go -package=mock
type Gateway interface {
	CreateAttendance(ctx context.Context, req MarkAttendanceRequest) (Record, error)
}

type Refresher interface {
	RefreshAttendance(ctx context.Context) error
}
