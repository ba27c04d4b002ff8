package backend

// Entities mirror the auditing backend's wire format. All persistence lives
// behind the backend; the console only reads and relays these shapes.

// Page is the backend's list envelope. Depending on the endpoint the rows
// arrive under "items" or "content".
type Page[T any] struct {
	Items         []T   `json:"items,omitempty"`
	Content       []T   `json:"content,omitempty"`
	TotalElements int64 `json:"total_elements"`
}

// Rows returns whichever field the backend populated.
func (p *Page[T]) Rows() []T {
	if len(p.Items) > 0 {
		return p.Items
	}
	return p.Content
}

type AccountUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccountType int    `json:"account_type"`
	Status      int    `json:"status"`
	CreateTime  string `json:"create_time"`
	UpdateTime  string `json:"update_time"`
}

type AccountBrief struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccountType int    `json:"account_type"`
}

type Employee struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	QwID            string `json:"qw_id"`
	AutoAnalyze     bool   `json:"auto_analyze"`
	Status          int    `json:"status"`
	GroupID         string `json:"group_id,omitempty"`
	GroupName       string `json:"group_name,omitempty"`
	AccountUserID   string `json:"account_user_id,omitempty"`
	AccountUsername string `json:"account_username,omitempty"`
	CreateTime      string `json:"create_time"`
	UpdateTime      string `json:"update_time"`
}

type EmployeeBrief struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	QwID     string `json:"qw_id"`
	IsLeader bool   `json:"is_leader"`
}

type EmployeeGroup struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	LeaderID    string          `json:"leader_id,omitempty"`
	LeaderName  string          `json:"leader_name,omitempty"`
	MemberCount int             `json:"member_count"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	Members     []EmployeeBrief `json:"members,omitempty"`
}

type WeeklyReportSummary struct {
	ID                       string `json:"id"`
	EmployeeID               string `json:"employee_id"`
	EmployeeName             string `json:"employee_name"`
	EmployeeQwID             string `json:"employee_qw_id"`
	EvalPeriod               string `json:"eval_period"`
	EvalType                 string `json:"eval_type"`
	TotalCustomers           int    `json:"total_customers"`
	TotalIntroduceCompleted  int    `json:"total_introduce_completed"`
	TotalIntroduceCourse     int    `json:"total_introduce_course"`
	TotalIntroduceTeacher    int    `json:"total_introduce_teacher"`
	TotalIntroduceSchedule   int    `json:"total_introduce_schedule"`
	TotalIntroduceCourseTime int    `json:"total_introduce_course_time"`
	TotalOrderCheck          int    `json:"total_order_check"`
	TotalMaterialSend        int    `json:"total_material_send"`
	TotalCourseRemind        int    `json:"total_course_remind"`
	TotalHomeworkPublish     int    `json:"total_homework_publish"`
	TotalFeedbackTrack       int    `json:"total_feedback_track"`
	TotalWeekMaterialSend    int    `json:"total_week_material_send"`
	TotalSundayLinkSend      int    `json:"total_sunday_link_send"`
	TotalRiskWordTrigger     int    `json:"total_risk_word_trigger"`
	GeneratingStatus         string `json:"generating_status,omitempty"`
}

type EvaluationDetail struct {
	ID                     string `json:"id"`
	EmployeeID             string `json:"employee_id"`
	CustomerID             string `json:"customer_id"`
	CustomerName           string `json:"customer_name"`
	EvalTime               string `json:"eval_time"`
	HasIntroduceTeacher    int    `json:"has_introduce_teacher"`
	HasIntroduceCourse     int    `json:"has_introduce_course"`
	HasIntroduceSchedule   int    `json:"has_introduce_schedule"`
	HasIntroduceCourseTime int    `json:"has_introduce_course_time"`
	HasOrderCheck          int    `json:"has_order_check"`
	HasMaterialSend        int    `json:"has_material_send"`
	HasCourseRemind        int    `json:"has_course_remind"`
	HasHomeworkPublish     int    `json:"has_homework_publish"`
	HasFeedbackTrack       int    `json:"has_feedback_track"`
	HasWeekMaterialSend    int    `json:"has_week_material_send"`
	HasSundayLinkSend      int    `json:"has_sunday_link_send"`
	HasRiskWordTrigger     int    `json:"has_risk_word_trigger"`
	ChatStartTime          string `json:"chat_start_time"`
	ChatEndTime            string `json:"chat_end_time"`
}

type ChatMessage struct {
	ID          string `json:"id"`
	SenderID    string `json:"sender_id"`
	SenderName  string `json:"sender_name"`
	SenderType  string `json:"sender_type"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
	Timestamp   string `json:"timestamp"`
}

type ChatSession struct {
	ID           string        `json:"id"`
	QwAccountID  string        `json:"qw_account_id"`
	CustomerID   string        `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	SessionDate  string        `json:"session_date"`
	StartTime    string        `json:"start_time"`
	EndTime      string        `json:"end_time"`
	Messages     []ChatMessage `json:"messages"`
}
