package models

// Viewer identifies who is asking for shopping lists.
type Viewer struct {
	Username string
	Role     Role
}

// CanSee reports whether v may see l.
//
// Admins see everything. Adults see public and adult-only lists, children see
// public lists, and both see private lists they own. A viewer with an unknown
// role only sees public lists.
func (v Viewer) CanSee(l *ShoppingList) bool {
	switch v.Role {
	case RoleAdmin:
		return true
	case RoleAdult:
		return l.Privacy == PrivacyPublic || l.Privacy == PrivacyAdultOnly || v.owns(l)
	case RoleChild:
		return l.Privacy == PrivacyPublic || v.owns(l)
	default:
		return l.Privacy == PrivacyPublic
	}
}

func (v Viewer) owns(l *ShoppingList) bool {
	return l.Privacy == PrivacyPrivate && v.Username != "" && l.Owner == v.Username
}

// FilterVisible returns the lists v can see, in their original order. A nil
// viewer sees everything.
func FilterVisible(lists []ShoppingList, v *Viewer) []ShoppingList {
	if v == nil {
		return lists
	}
	out := make([]ShoppingList, 0, len(lists))
	for i := range lists {
		if v.CanSee(&lists[i]) {
			out = append(out, lists[i])
		}
	}
	return out
}
