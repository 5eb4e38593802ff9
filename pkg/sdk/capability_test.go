package sdk_test

import (
	"testing"

	"github.com/campusworks/campus/pkg/sdk"
)

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		role sdk.Role
		want []sdk.Feature
	}{
		{
			role: sdk.RoleAdmin,
			want: []sdk.Feature{sdk.FeatureOverview, sdk.FeatureStudents, sdk.FeatureAttendance, sdk.FeatureGrades, sdk.FeatureCommunication},
		},
		{
			role: sdk.RoleTeacher,
			want: []sdk.Feature{sdk.FeatureOverview, sdk.FeatureStudents, sdk.FeatureAttendance, sdk.FeatureGrades, sdk.FeatureCommunication},
		},
		{
			role: sdk.RoleStudent,
			want: []sdk.Feature{sdk.FeatureOverview, sdk.FeatureAttendance, sdk.FeatureGrades, sdk.FeatureCommunication},
		},
		{
			role: sdk.RoleParent,
			want: []sdk.Feature{sdk.FeatureOverview, sdk.FeatureCommunication},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got := sdk.CapabilitiesFor(tt.role)
			if len(got) != len(tt.want) {
				t.Fatalf("CapabilitiesFor(%s) has %d features, want %d", tt.role, len(got), len(tt.want))
			}
			for _, f := range tt.want {
				if !got.Has(f) {
					t.Errorf("CapabilitiesFor(%s) missing %s", tt.role, f)
				}
			}
		})
	}
}

func TestCapabilitiesSubsetOfUniverse(t *testing.T) {
	universe := make(map[sdk.Feature]bool)
	for _, f := range sdk.Features() {
		universe[f] = true
	}

	for _, role := range []sdk.Role{sdk.RoleAdmin, sdk.RoleTeacher, sdk.RoleStudent, sdk.RoleParent} {
		set := sdk.CapabilitiesFor(role)
		for _, f := range set.List() {
			if !universe[f] {
				t.Errorf("CapabilitiesFor(%s) granted %q outside the feature universe", role, f)
			}
		}
		if !set.Has(sdk.FeatureOverview) || !set.Has(sdk.FeatureCommunication) {
			t.Errorf("CapabilitiesFor(%s) must include overview and communication", role)
		}
	}
}

func TestCapabilitiesStudentsStaffOnly(t *testing.T) {
	for _, role := range []sdk.Role{sdk.RoleStudent, sdk.RoleParent} {
		if sdk.CapabilitiesFor(role).Has(sdk.FeatureStudents) {
			t.Errorf("role %s must not see the students surface", role)
		}
	}
}

func TestCapabilitiesUnknownRoleFailsClosed(t *testing.T) {
	for _, role := range []sdk.Role{"", "principal", "superuser"} {
		set := sdk.CapabilitiesFor(role)
		if len(set) != 0 {
			t.Errorf("CapabilitiesFor(%q) = %v, want empty set", role, set.List())
		}
	}
}

func TestFeatureSetListOrder(t *testing.T) {
	list := sdk.CapabilitiesFor(sdk.RoleAdmin).List()
	want := sdk.Features()
	if len(list) != len(want) {
		t.Fatalf("List() returned %d features, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i], want[i])
		}
	}
}
