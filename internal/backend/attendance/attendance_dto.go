package attendance

type MarkAttendanceRequest struct {
	Employee string `json:"employee" binding:"required,max=64"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Status   string `json:"status" binding:"required,oneof=Present Absent"`
}

type RecordResponse struct {
	ID       string `json:"id"`
	Employee string `json:"employee"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

func MapToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:       r.ID,
		Employee: r.EmployeeID,
		Date:     r.Date,
		Status:   r.Status,
	}
}

func MapToListResponse(records []Record) []RecordResponse {
	res := make([]RecordResponse, len(records))
	for i, r := range records {
		res[i] = MapToResponse(r)
	}
	return res
}
