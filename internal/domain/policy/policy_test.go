package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/store-ledger/internal/domain/policy"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, policy.RoleSupplier.Valid())
	assert.True(t, policy.RoleCustomer.Valid())
	assert.True(t, policy.RoleAdmin.Valid())

	assert.False(t, policy.Role("").Valid())
	assert.False(t, policy.Role("admin").Valid(), "los roles son case-sensitive")
	assert.False(t, policy.Role("Manager").Valid())
}

// Matriz completa rol × acción. Cada regla del negocio tiene su fila:
// lectura de productos pública, escritura de productos para Supplier y Admin,
// escritura de tiendas solo Admin, lecturas y posting para cualquier cuenta.
func TestAllowed_MatrizDeAcceso(t *testing.T) {
	cases := []struct {
		role   policy.Role
		action policy.Action
		want   bool
	}{
		// product:read es público, incluso sin rol.
		{policy.RoleSupplier, policy.ActionProductRead, true},
		{policy.RoleCustomer, policy.ActionProductRead, true},
		{policy.RoleAdmin, policy.ActionProductRead, true},
		{policy.Role(""), policy.ActionProductRead, true},

		// Escritura de productos: Supplier o Admin.
		{policy.RoleSupplier, policy.ActionProductCreate, true},
		{policy.RoleAdmin, policy.ActionProductCreate, true},
		{policy.RoleCustomer, policy.ActionProductCreate, false},
		{policy.RoleSupplier, policy.ActionProductUpdate, true},
		{policy.RoleCustomer, policy.ActionProductUpdate, false},
		{policy.RoleSupplier, policy.ActionProductDelete, true},
		{policy.RoleCustomer, policy.ActionProductDelete, false},

		// Escritura de tiendas: solo Admin.
		{policy.RoleAdmin, policy.ActionStoreCreate, true},
		{policy.RoleSupplier, policy.ActionStoreCreate, false},
		{policy.RoleCustomer, policy.ActionStoreCreate, false},
		{policy.RoleAdmin, policy.ActionStoreUpdate, true},
		{policy.RoleSupplier, policy.ActionStoreUpdate, false},
		{policy.RoleAdmin, policy.ActionStoreDelete, true},
		{policy.RoleCustomer, policy.ActionStoreDelete, false},

		// Lecturas y posting: cualquier rol válido.
		{policy.RoleCustomer, policy.ActionStoreRead, true},
		{policy.RoleSupplier, policy.ActionStockRead, true},
		{policy.RoleCustomer, policy.ActionTransactionPost, true},
		{policy.RoleSupplier, policy.ActionTransactionRead, true},
		{policy.RoleAdmin, policy.ActionTransactionPost, true},

		// Rol inválido: nada salvo lo público.
		{policy.Role(""), policy.ActionStoreRead, false},
		{policy.Role("admin"), policy.ActionTransactionPost, false},
		{policy.Role("Manager"), policy.ActionProductCreate, false},
	}
	for _, tc := range cases {
		got := policy.Allowed(tc.role, tc.action)
		assert.Equal(t, tc.want, got, "Allowed(%q, %q)", tc.role, tc.action)
	}
}

func TestAllowed_AccionDesconocida_SiempreNiega(t *testing.T) {
	assert.False(t, policy.Allowed(policy.RoleAdmin, policy.Action("store:burn")))
}
