package models

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleAgency, RoleAdvertiser} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("superuser").Valid() {
		t.Error("superuser should not be valid")
	}
}

func TestScopeIsAdmin(t *testing.T) {
	if !(Scope{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin scope should bypass ownership filters")
	}
	if (Scope{Role: RoleAgency}).IsAdmin() {
		t.Error("agency scope should not bypass ownership filters")
	}
	if (Scope{Role: RoleAdvertiser}).IsAdmin() {
		t.Error("advertiser scope should not bypass ownership filters")
	}
}
