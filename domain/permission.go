package domain

import "circular-lab/errors"

// permissionMatrix is the closed mapping from sender role to the group tags
// that role may target. Roles absent from the table cannot issue circulars.
var permissionMatrix = map[Role][]GroupTag{
	RoleManagement: {GroupStudents, GroupProfessors, GroupAll},
	RoleProfessor:  {GroupStudents, GroupManagement},
}

// AllowedGroups returns the group tags the given role may target.
// Unknown roles get an empty set.
func AllowedGroups(role Role) []GroupTag {
	allowed := permissionMatrix[role]
	out := make([]GroupTag, len(allowed))
	copy(out, allowed)
	return out
}

// ValidateSelection rejects an empty selection and any tag outside the
// role's matrix row. No side effects.
func ValidateSelection(role Role, selected []GroupTag) error {
	if len(selected) == 0 {
		return errors.ValidationError{Field: "recipientGroups", Reason: "at least one recipient group must be selected"}
	}
	allowed := permissionMatrix[role]
	if len(allowed) == 0 {
		return errors.PermissionError{Role: string(role)}
	}
	for _, tag := range selected {
		if !containsTag(allowed, tag) {
			return errors.PermissionError{Role: string(role), Group: string(tag)}
		}
	}
	return nil
}

func containsTag(tags []GroupTag, tag GroupTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
