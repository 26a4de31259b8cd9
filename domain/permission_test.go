package domain

import (
	"testing"

	"circular-lab/errors"

	"github.com/stretchr/testify/require"
)

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		selected []GroupTag
		wantErr  error
	}{
		{
			name:     "management may target students",
			role:     RoleManagement,
			selected: []GroupTag{GroupStudents},
		},
		{
			name:     "management may target professors and all together",
			role:     RoleManagement,
			selected: []GroupTag{GroupProfessors, GroupAll},
		},
		{
			name:     "management may not target the management group",
			role:     RoleManagement,
			selected: []GroupTag{GroupManagement},
			wantErr:  errors.PermissionError{Role: "MANAGEMENT", Group: "MANAGEMENT"},
		},
		{
			name:     "professor may escalate to management",
			role:     RoleProfessor,
			selected: []GroupTag{GroupStudents, GroupManagement},
		},
		{
			name:     "professor may not target all",
			role:     RoleProfessor,
			selected: []GroupTag{GroupAll},
			wantErr:  errors.PermissionError{Role: "PROFESSOR", Group: "ALL"},
		},
		{
			name:     "professor may not target other professors",
			role:     RoleProfessor,
			selected: []GroupTag{GroupProfessors},
			wantErr:  errors.PermissionError{Role: "PROFESSOR", Group: "PROFESSORS"},
		},
		{
			name:     "one bad tag poisons the whole selection",
			role:     RoleProfessor,
			selected: []GroupTag{GroupStudents, GroupProfessors},
			wantErr:  errors.PermissionError{Role: "PROFESSOR", Group: "PROFESSORS"},
		},
		{
			name:     "student may not send at all",
			role:     RoleStudent,
			selected: []GroupTag{GroupStudents},
			wantErr:  errors.PermissionError{Role: "STUDENT"},
		},
		{
			name:     "alumni may not send at all",
			role:     RoleAlumni,
			selected: []GroupTag{GroupAll},
			wantErr:  errors.PermissionError{Role: "ALUMNI"},
		},
		{
			name:     "empty selection is a validation problem, not a permission one",
			role:     RoleManagement,
			selected: nil,
			wantErr:  errors.ValidationError{Field: "recipientGroups", Reason: "at least one recipient group must be selected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidateSelection(tt.role, tt.selected)
			if tt.wantErr == nil {
				req.NoError(err)
				return
			}
			req.Equal(tt.wantErr, err)
		})
	}
}

func TestAllowedGroups(t *testing.T) {
	req := require.New(t)

	req.ElementsMatch([]GroupTag{GroupStudents, GroupProfessors, GroupAll}, AllowedGroups(RoleManagement))
	req.ElementsMatch([]GroupTag{GroupStudents, GroupManagement}, AllowedGroups(RoleProfessor))
	req.Empty(AllowedGroups(RoleStudent))
	req.Empty(AllowedGroups(RoleAlumni))
	req.Empty(AllowedGroups(Role("JANITOR")))
}

func TestAllowedGroups_ReturnsACopy(t *testing.T) {
	req := require.New(t)

	first := AllowedGroups(RoleProfessor)
	first[0] = GroupAll

	req.Equal([]GroupTag{GroupStudents, GroupManagement}, AllowedGroups(RoleProfessor))
}
