package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPartnerType_Valid(t *testing.T) {
	for _, pt := range PartnerTypes {
		assert.True(t, pt.Valid(), pt)
	}
	assert.False(t, PartnerType("Oro").Valid())
	assert.False(t, PartnerType("regular").Valid())
	assert.False(t, PartnerType("").Valid())
}

func TestProduct_Cost(t *testing.T) {
	tests := []struct {
		name     string
		credits  string
		quantity int
		want     string
	}{
		{"entero", "10", 3, "30"},
		{"decimal", "7.5", 4, "30"},
		{"gratis", "0", 1000, "0"},
		{"máximo", "9999", 1000, "9999000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Credits: decimal.RequireFromString(tt.credits)}
			assert.True(t, decimal.RequireFromString(tt.want).Equal(p.Cost(tt.quantity)))
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleSuperAdmin))
	assert.False(t, ValidRole("vendedor"))
	assert.False(t, ValidRole(""))
}

func TestPrincipalFromEmployee(t *testing.T) {
	e := &Employee{ID: "e1", Name: "Luis", Username: "luis", PasswordHash: "h", Role: RoleAdmin, Position: "Caja", Active: true}
	p := PrincipalFromEmployee(e)

	assert.Equal(t, PrincipalEmployee, p.Kind)
	assert.Equal(t, "luis", p.Username)
	assert.Equal(t, "Caja", p.Position)
	assert.True(t, e.HasCredentials())
	assert.False(t, (&Employee{Username: "x"}).HasCredentials())
}
