package sdk_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/campusworks/campus/pkg/sdk"
)

// fakeSchoolAPI is an in-memory stand-in for the remote school API, speaking
// its exact wire contract: /api prefix, bearer auth, {"detail": ...} errors,
// 401 for credential rejections and 403 for role checks.
type fakeSchoolAPI struct {
	mu sync.Mutex

	accounts map[string]fakeAccount // username -> account
	tokens   map[string]string      // access token -> username

	students      []sdk.Student
	attendance    []sdk.Attendance
	grades        []sdk.Grade
	announcements []sdk.Announcement

	nextID int

	// meBarrier, when set, is closed by the test to release a blocked
	// /auth/me handler. Used to order in-flight responses around logouts.
	meBarrier chan struct{}
}

type fakeAccount struct {
	password string
	user     sdk.User
}

func newFakeSchoolAPI() *fakeSchoolAPI {
	api := &fakeSchoolAPI{
		accounts: make(map[string]fakeAccount),
		tokens:   make(map[string]string),
	}
	api.addAccount("admin", "admin123", sdk.RoleAdmin, "Admin User")
	api.addAccount("teacher1", "teacher123", sdk.RoleTeacher, "Teacher One")
	api.addAccount("student1", "student123", sdk.RoleStudent, "Student One")
	api.addAccount("parent1", "parent123", sdk.RoleParent, "Parent One")
	return api
}

func (api *fakeSchoolAPI) addAccount(username, password string, role sdk.Role, fullName string) {
	api.nextID++
	api.accounts[username] = fakeAccount{
		password: password,
		user: sdk.User{
			ID:        fmt.Sprintf("user-%d", api.nextID),
			Username:  username,
			Role:      role,
			FullName:  fullName,
			CreatedAt: time.Now().UTC(),
		},
	}
}

// revokeAll invalidates every issued token, simulating server-side expiry.
func (api *fakeSchoolAPI) revokeAll() {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.tokens = make(map[string]string)
}

func (api *fakeSchoolAPI) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(api.handle))
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// authenticate resolves the bearer token to a user, or writes a 401.
func (api *fakeSchoolAPI) authenticate(w http.ResponseWriter, r *http.Request) (sdk.User, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return sdk.User{}, false
	}
	api.mu.Lock()
	username, ok := api.tokens[token]
	api.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return sdk.User{}, false
	}
	return api.accounts[username].user, true
}

func isStaff(role sdk.Role) bool {
	return role == sdk.RoleAdmin || role == sdk.RoleTeacher
}

func (api *fakeSchoolAPI) handle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == "/api/auth/login" && r.Method == http.MethodPost:
		api.handleLogin(w, r)
	case path == "/api/auth/register" && r.Method == http.MethodPost:
		api.handleRegister(w, r)
	case path == "/api/auth/me" && r.Method == http.MethodGet:
		if api.meBarrier != nil {
			<-api.meBarrier
		}
		user, ok := api.authenticate(w, r)
		if !ok {
			return
		}
		writeJSON(w, user)
	case path == "/api/students":
		api.handleStudents(w, r)
	case strings.HasPrefix(path, "/api/students/"):
		api.handleStudentByID(w, r, strings.TrimPrefix(path, "/api/students/"))
	case path == "/api/attendance":
		api.handleAttendance(w, r)
	case path == "/api/grades":
		api.handleGrades(w, r)
	case path == "/api/announcements":
		api.handleAnnouncements(w, r)
	case path == "/api/dashboard/stats" && r.Method == http.MethodGet:
		if _, ok := api.authenticate(w, r); !ok {
			return
		}
		writeJSON(w, map[string]int64{"total_students": int64(len(api.students))})
	default:
		writeDetail(w, http.StatusNotFound, "Not Found")
	}
}

func (api *fakeSchoolAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	account, ok := api.accounts[body.Username]
	if !ok || account.password != body.Password {
		writeDetail(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	token := fmt.Sprintf("tok-%s-%d", body.Username, time.Now().UnixNano())
	api.mu.Lock()
	api.tokens[token] = body.Username
	api.mu.Unlock()
	writeJSON(w, sdk.LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        account.user,
	})
}

func (api *fakeSchoolAPI) handleRegister(w http.ResponseWriter, r *http.Request) {
	var input sdk.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if _, exists := api.accounts[input.Username]; exists {
		writeDetail(w, http.StatusBadRequest, "Username already exists")
		return
	}
	api.addAccount(input.Username, input.Password, input.Role, input.FullName)
	writeJSON(w, api.accounts[input.Username].user)
}

func (api *fakeSchoolAPI) handleStudents(w http.ResponseWriter, r *http.Request) {
	user, ok := api.authenticate(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		api.mu.Lock()
		defer api.mu.Unlock()
		if api.students == nil {
			writeJSON(w, []sdk.Student{})
			return
		}
		writeJSON(w, api.students)
	case http.MethodPost:
		if !isStaff(user.Role) {
			writeDetail(w, http.StatusForbidden, "Not authorized")
			return
		}
		var input sdk.StudentInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
			return
		}
		api.mu.Lock()
		api.nextID++
		student := sdk.Student{
			ID:         fmt.Sprintf("student-%d", api.nextID),
			UserID:     user.ID,
			FullName:   input.FullName,
			RollNumber: input.RollNumber,
			ClassName:  input.ClassName,
			Section:    input.Section,
			CreatedAt:  time.Now().UTC(),
		}
		api.students = append(api.students, student)
		api.mu.Unlock()
		writeJSON(w, student)
	}
}

func (api *fakeSchoolAPI) handleStudentByID(w http.ResponseWriter, r *http.Request, id string) {
	user, ok := api.authenticate(w, r)
	if !ok {
		return
	}
	api.mu.Lock()
	defer api.mu.Unlock()
	idx := -1
	for i, s := range api.students {
		if s.ID == id {
			idx = i
			break
		}
	}
	switch r.Method {
	case http.MethodGet:
		if idx < 0 {
			writeDetail(w, http.StatusNotFound, "Student not found")
			return
		}
		writeJSON(w, api.students[idx])
	case http.MethodPut:
		if !isStaff(user.Role) {
			writeDetail(w, http.StatusForbidden, "Not authorized")
			return
		}
		if idx < 0 {
			writeDetail(w, http.StatusNotFound, "Student not found")
			return
		}
		var input sdk.StudentInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
			return
		}
		api.students[idx].FullName = input.FullName
		api.students[idx].RollNumber = input.RollNumber
		api.students[idx].ClassName = input.ClassName
		api.students[idx].Section = input.Section
		writeJSON(w, api.students[idx])
	case http.MethodDelete:
		if user.Role != sdk.RoleAdmin {
			writeDetail(w, http.StatusForbidden, "Not authorized")
			return
		}
		if idx < 0 {
			writeDetail(w, http.StatusNotFound, "Student not found")
			return
		}
		api.students = append(api.students[:idx], api.students[idx+1:]...)
		writeJSON(w, map[string]string{"message": "Student deleted successfully"})
	}
}

func (api *fakeSchoolAPI) handleAttendance(w http.ResponseWriter, r *http.Request) {
	user, ok := api.authenticate(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		studentID := r.URL.Query().Get("student_id")
		date := r.URL.Query().Get("date")
		out := []sdk.Attendance{}
		api.mu.Lock()
		for _, rec := range api.attendance {
			if studentID != "" && rec.StudentID != studentID {
				continue
			}
			if date != "" && rec.Date != date {
				continue
			}
			out = append(out, rec)
		}
		api.mu.Unlock()
		writeJSON(w, out)
	case http.MethodPost:
		if !isStaff(user.Role) {
			writeDetail(w, http.StatusForbidden, "Not authorized")
			return
		}
		var input sdk.AttendanceInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
			return
		}
		api.mu.Lock()
		api.nextID++
		rec := sdk.Attendance{
			ID:          fmt.Sprintf("att-%d", api.nextID),
			StudentID:   input.StudentID,
			StudentName: input.StudentName,
			Date:        input.Date,
			Status:      input.Status,
			Subject:     input.Subject,
			MarkedBy:    user.ID,
			CreatedAt:   time.Now().UTC(),
		}
		api.attendance = append(api.attendance, rec)
		api.mu.Unlock()
		writeJSON(w, rec)
	}
}

func (api *fakeSchoolAPI) handleGrades(w http.ResponseWriter, r *http.Request) {
	user, ok := api.authenticate(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		studentID := r.URL.Query().Get("student_id")
		out := []sdk.Grade{}
		api.mu.Lock()
		for _, g := range api.grades {
			if studentID != "" && g.StudentID != studentID {
				continue
			}
			out = append(out, g)
		}
		api.mu.Unlock()
		writeJSON(w, out)
	case http.MethodPost:
		if !isStaff(user.Role) {
			writeDetail(w, http.StatusForbidden, "Not authorized")
			return
		}
		var input sdk.GradeInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
			return
		}
		api.mu.Lock()
		api.nextID++
		grade := sdk.Grade{
			ID:          fmt.Sprintf("grade-%d", api.nextID),
			StudentID:   input.StudentID,
			StudentName: input.StudentName,
			Subject:     input.Subject,
			ExamType:    input.ExamType,
			Marks:       input.Marks,
			MaxMarks:    input.MaxMarks,
			Date:        input.Date,
			TeacherID:   user.ID,
			CreatedAt:   time.Now().UTC(),
		}
		api.grades = append(api.grades, grade)
		api.mu.Unlock()
		writeJSON(w, grade)
	}
}

func (api *fakeSchoolAPI) handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	user, ok := api.authenticate(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		out := []sdk.Announcement{}
		api.mu.Lock()
		for _, a := range api.announcements {
			if user.Role != sdk.RoleAdmin && a.TargetRole != "" && a.TargetRole != string(user.Role) {
				continue
			}
			out = append(out, a)
		}
		api.mu.Unlock()
		writeJSON(w, out)
	case http.MethodPost:
		if !isStaff(user.Role) {
			writeDetail(w, http.StatusForbidden, "Not authorized")
			return
		}
		var input sdk.AnnouncementInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
			return
		}
		api.mu.Lock()
		api.nextID++
		a := sdk.Announcement{
			ID:         fmt.Sprintf("ann-%d", api.nextID),
			Title:      input.Title,
			Content:    input.Content,
			Author:     user.FullName,
			TargetRole: input.TargetRole,
			CreatedAt:  time.Now().UTC(),
		}
		api.announcements = append(api.announcements, a)
		api.mu.Unlock()
		writeJSON(w, a)
	}
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	infos     []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}
