package domain

import "fmt"

// Role identifies the kind of account behind a user ID.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleProfessor  Role = "PROFESSOR"
	RoleManagement Role = "MANAGEMENT"
	RoleAlumni     Role = "ALUMNI"
)

// GroupTag selects a cohort of recipients at send time.
// ALL is shorthand for STUDENTS ∪ PROFESSORS and is resolved server-side.
type GroupTag string

const (
	GroupStudents   GroupTag = "STUDENTS"
	GroupProfessors GroupTag = "PROFESSORS"
	GroupManagement GroupTag = "MANAGEMENT"
	GroupAll        GroupTag = "ALL"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleProfessor, RoleManagement, RoleAlumni:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func ParseGroupTag(s string) (GroupTag, error) {
	switch GroupTag(s) {
	case GroupStudents, GroupProfessors, GroupManagement, GroupAll:
		return GroupTag(s), nil
	}
	return "", fmt.Errorf("unknown recipient group %q", s)
}

// MemberRole maps a concrete (non-ALL) group tag to the directory role whose
// users belong to it.
func (g GroupTag) MemberRole() (Role, bool) {
	switch g {
	case GroupStudents:
		return RoleStudent, true
	case GroupProfessors:
		return RoleProfessor, true
	case GroupManagement:
		return RoleManagement, true
	}
	return "", false
}
