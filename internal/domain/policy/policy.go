package policy

// Role es el conjunto cerrado de roles de cuenta. El rol se fija al crear la
// cuenta y no cambia por ningún flujo normal.
type Role string

const (
	RoleSupplier Role = "Supplier"
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleSupplier, RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// AllRoles conjunto por defecto de roles que una instalación acepta al
// registrar cuentas. Se inyecta explícitamente en el caso de uso de auth.
func AllRoles() []Role {
	return []Role{RoleSupplier, RoleCustomer, RoleAdmin}
}

// Action es una acción que un caller intenta ejecutar contra la API.
type Action string

const (
	ActionProductCreate Action = "product:create"
	ActionProductUpdate Action = "product:update"
	ActionProductDelete Action = "product:delete"
	ActionProductRead   Action = "product:read"

	ActionStoreCreate Action = "store:create"
	ActionStoreUpdate Action = "store:update"
	ActionStoreDelete Action = "store:delete"
	ActionStoreRead   Action = "store:read"

	ActionStockRead Action = "stock:read"

	ActionTransactionPost Action = "transaction:post"
	ActionTransactionRead Action = "transaction:read"
)

// Allowed decide si el rol puede ejecutar la acción. El matching es exhaustivo
// sobre el enum de acciones; no hay comparación de strings dispersa por los
// call sites. Nota: Allowed solo controla la entrada al motor de posting; la
// regla "created_by debe ser Admin" vive en el validador de transacciones y
// aplica sin importar el rol del caller.
func Allowed(role Role, action Action) bool {
	switch action {
	case ActionProductRead:
		// Lectura de productos sin restricción (incluso sin autenticar).
		return true
	case ActionProductCreate, ActionProductUpdate, ActionProductDelete:
		return role == RoleSupplier || role == RoleAdmin
	case ActionStoreCreate, ActionStoreUpdate, ActionStoreDelete:
		return role == RoleAdmin
	case ActionStoreRead, ActionStockRead, ActionTransactionPost, ActionTransactionRead:
		// Cualquier cuenta autenticada con rol válido.
		return role.Valid()
	}
	return false
}
