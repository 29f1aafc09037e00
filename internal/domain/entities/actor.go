package entities

// ActorRole is the permission class attempting a workflow transition.
//
// Authentication/session handling lives outside this service; callers are
// expected to resolve the acting principal to one of these roles before
// invoking a transition.

type ActorRole string

const (
	ActorRoleAdmin    ActorRole = "admin"
	ActorRoleCustomer ActorRole = "customer"
	ActorRoleSystem   ActorRole = "system"
)

// ParseActorRole maps a raw role string to a known ActorRole.
func ParseActorRole(raw string) (ActorRole, bool) {
	switch ActorRole(raw) {
	case ActorRoleAdmin, ActorRoleCustomer, ActorRoleSystem:
		return ActorRole(raw), true
	}
	return "", false
}
