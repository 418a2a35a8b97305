package dto

// ReceivedFields echoes the submitted values back when required fields are
// missing, so clients can see what actually arrived.
type ReceivedFields struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Status      string `json:"status"`
}

type MissingFieldsResponse struct {
	Message  string         `json:"message"`
	Received ReceivedFields `json:"received"`
}

type CreateReportResponse struct {
	Message  string  `json:"message"`
	ID       uint    `json:"id"`
	Image    *string `json:"image"`
	ImageURL *string `json:"imageUrl"`
}

type ReportItem struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	Location string  `json:"location"`
	Image    *string `json:"image"`
	Date     string  `json:"date"`
	ImageURL *string `json:"imageUrl"`
}

// UserReportItem is the per-user projection; it carries no location.
type UserReportItem struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	Image    *string `json:"image"`
	Date     string  `json:"date"`
	ImageURL *string `json:"imageUrl"`
}

type UserReportsResponse struct {
	Reports []UserReportItem `json:"reports"`
}
