package dto

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func strptr(s string) *string { return &s }

func validTeacherRequest() ProvisionUserRequest {
	return ProvisionUserRequest{
		Email:       "jdoe@school.test",
		Password:    "s3cret-pass",
		FirstName:   "Jane",
		LastName:    "Doe",
		UserType:    UserTypeTeacher,
		EmployeeID:  strptr("EMP-17"),
		Specialties: []string{"math", "physics"},
	}
}

func validStudentRequest() ProvisionUserRequest {
	return ProvisionUserRequest{
		Email:     "kid@school.test",
		Password:  "s3cret-pass",
		FirstName: "Sam",
		LastName:  "Smith",
		UserType:  UserTypeStudent,
		Matricule: strptr("MAT-2024-001"),
		Birthday:  strptr("2012-09-01"),
	}
}

func TestProvisionUserRequestValid(t *testing.T) {
	for _, req := range []ProvisionUserRequest{validTeacherRequest(), validStudentRequest()} {
		if err := req.Validate(); err != nil {
			t.Fatalf("expected valid request, got %v", err)
		}
	}
}

func TestProvisionUserRequestInvalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ProvisionUserRequest)
	}{
		{"missing email", func(r *ProvisionUserRequest) { r.Email = "" }},
		{"malformed email", func(r *ProvisionUserRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *ProvisionUserRequest) { r.Password = "short" }},
		{"missing first name", func(r *ProvisionUserRequest) { r.FirstName = "" }},
		{"unknown user type", func(r *ProvisionUserRequest) { r.UserType = "admin" }},
		{"bad birthday format", func(r *ProvisionUserRequest) { r.Birthday = strptr("01/09/2012") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validTeacherRequest()
			tc.mutate(&req)
			if err := req.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestStudentRequiresMatricule(t *testing.T) {
	for _, m := range []*string{nil, strptr(""), strptr("   ")} {
		req := validStudentRequest()
		req.Matricule = m

		err := req.Validate()
		if err == nil {
			t.Fatal("expected error for student without matricule")
		}
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
			t.Fatalf("expected 400 fiber error, got %v", err)
		}
	}
}
