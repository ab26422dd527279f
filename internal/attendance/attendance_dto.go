package attendance

type MarkAttendanceRequest struct {
	Employee string `json:"employee"`
	Date     string `json:"date"`
	Status   Status `json:"status"`
}
