package access

// Role is a capability required by administrative ledger operations.
type Role string

func (r Role) String() string {
	return string(r)
}

const (
	// RoleAdmin may sweep excess custody balance.
	RoleAdmin Role = "ADMIN"
	// RoleManager may tune ledger parameters (min stake, annual rate).
	RoleManager Role = "MANAGER"
)

// Gate answers capability checks for administrative entry points. The ledger
// never hardcodes role logic; it only consults the gate.
type Gate interface {
	HasRole(caller string, role Role) bool
}

// StaticGate is a Gate backed by fixed role assignments, typically loaded
// from the config file at startup.
type StaticGate struct {
	admins   map[string]struct{}
	managers map[string]struct{}
}

func NewStaticGate(admins, managers []string) *StaticGate {
	gate := &StaticGate{
		admins:   make(map[string]struct{}, len(admins)),
		managers: make(map[string]struct{}, len(managers)),
	}
	for _, addr := range admins {
		gate.admins[addr] = struct{}{}
	}
	for _, addr := range managers {
		gate.managers[addr] = struct{}{}
	}
	return gate
}

func (g *StaticGate) HasRole(caller string, role Role) bool {
	switch role {
	case RoleAdmin:
		_, ok := g.admins[caller]
		return ok
	case RoleManager:
		_, ok := g.managers[caller]
		return ok
	}
	return false
}
