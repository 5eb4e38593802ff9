package sdk

// Role is one of the four fixed account categories issued by the school API.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

// Feature is a named gated capability controlling which console surfaces a
// session may use.
type Feature string

const (
	FeatureOverview      Feature = "overview"
	FeatureStudents      Feature = "students"
	FeatureAttendance    Feature = "attendance"
	FeatureGrades        Feature = "grades"
	FeatureCommunication Feature = "communication"
)

// Features lists the full feature universe in display order.
func Features() []Feature {
	return []Feature{
		FeatureOverview,
		FeatureStudents,
		FeatureAttendance,
		FeatureGrades,
		FeatureCommunication,
	}
}

// FeatureSet is the set of features a role may use.
type FeatureSet map[Feature]struct{}

// Has reports whether the set grants the given feature.
func (s FeatureSet) Has(f Feature) bool {
	_, ok := s[f]
	return ok
}

// List returns the granted features in display order.
func (s FeatureSet) List() []Feature {
	out := make([]Feature, 0, len(s))
	for _, f := range Features() {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// roleFeatures is static configuration, not derived data. Every role sees the
// overview and communication surfaces; student records are staff-only;
// attendance and grades exclude parents.
var roleFeatures = map[Role][]Feature{
	RoleAdmin:   {FeatureOverview, FeatureStudents, FeatureAttendance, FeatureGrades, FeatureCommunication},
	RoleTeacher: {FeatureOverview, FeatureStudents, FeatureAttendance, FeatureGrades, FeatureCommunication},
	RoleStudent: {FeatureOverview, FeatureAttendance, FeatureGrades, FeatureCommunication},
	RoleParent:  {FeatureOverview, FeatureCommunication},
}

// CapabilitiesFor resolves a role to its feature set. Unknown or empty roles
// resolve to the empty set: access decisions fail closed.
func CapabilitiesFor(role Role) FeatureSet {
	features, ok := roleFeatures[role]
	if !ok {
		return FeatureSet{}
	}
	set := make(FeatureSet, len(features))
	for _, f := range features {
		set[f] = struct{}{}
	}
	return set
}
