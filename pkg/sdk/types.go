package sdk

import "time"

// User is an account record resolved from the school API. It is fetched fresh
// whenever a credential is adopted and never persisted locally.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult is the atomic response to a successful login: a fresh credential
// and the resolved user in one exchange.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// RegisterInput creates a new account.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
}

// Student is an enrollment record.
type Student struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	FullName    string    `json:"full_name"`
	RollNumber  string    `json:"roll_number"`
	ClassName   string    `json:"class_name"`
	Section     string    `json:"section"`
	ParentID    string    `json:"parent_id,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// StudentInput creates or fully replaces a student record.
type StudentInput struct {
	FullName    string `json:"full_name"`
	RollNumber  string `json:"roll_number"`
	ClassName   string `json:"class_name"`
	Section     string `json:"section"`
	ParentID    string `json:"parent_id,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// AttendanceStatus is the recorded presence state for a day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Attendance is a single day's mark for a student.
type Attendance struct {
	ID          string           `json:"id"`
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	Date        string           `json:"date"`
	Status      AttendanceStatus `json:"status"`
	Subject     string           `json:"subject,omitempty"`
	MarkedBy    string           `json:"marked_by"`
	CreatedAt   time.Time        `json:"created_at"`
}

// AttendanceInput marks attendance for a student on a date.
type AttendanceInput struct {
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	Date        string           `json:"date"`
	Status      AttendanceStatus `json:"status"`
	Subject     string           `json:"subject,omitempty"`
}

// AttendanceFilter narrows an attendance listing. Zero fields are unset.
type AttendanceFilter struct {
	StudentID string
	Date      string
}

// Grade is an exam result for a student.
type Grade struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	Subject     string    `json:"subject"`
	ExamType    string    `json:"exam_type"`
	Marks       float64   `json:"marks"`
	MaxMarks    float64   `json:"max_marks"`
	Date        string    `json:"date"`
	TeacherID   string    `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// GradeInput records an exam result.
type GradeInput struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	Subject     string  `json:"subject"`
	ExamType    string  `json:"exam_type"`
	Marks       float64 `json:"marks"`
	MaxMarks    float64 `json:"max_marks"`
	Date        string  `json:"date"`
}

// GradeFilter narrows a grade listing.
type GradeFilter struct {
	StudentID string
}

// Announcement is a school-wide or role-targeted notice. The server filters
// role-targeted notices for non-admin callers.
type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	TargetRole string    `json:"target_role,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AnnouncementInput publishes a notice, optionally targeted at one role.
type AnnouncementInput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	TargetRole string `json:"target_role,omitempty"`
}

// DashboardStats is the role-shaped set of counters the server computes for
// the overview surface. Keys differ per role.
type DashboardStats map[string]int64
