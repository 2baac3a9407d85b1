package entity

import "time"

// PartnerType categoría comercial del socio.
type PartnerType string

const (
	PartnerTypeRegular  PartnerType = "Regular"
	PartnerTypeVIP      PartnerType = "VIP"
	PartnerTypeEmpresa  PartnerType = "Empresa"
	PartnerTypeFamiliar PartnerType = "Familiar"
)

// PartnerTypes lista los tipos aceptados, en orden de presentación.
var PartnerTypes = []PartnerType{PartnerTypeRegular, PartnerTypeVIP, PartnerTypeEmpresa, PartnerTypeFamiliar}

// Valid indica si t es uno de los tipos conocidos.
func (t PartnerType) Valid() bool {
	for _, pt := range PartnerTypes {
		if t == pt {
			return true
		}
	}
	return false
}

// Partner socio del club. Los opcionales vacíos se persisten como NULL.
type Partner struct {
	ID        string
	Name      string
	Nickname  string
	DNI       string // ^[0-9]{8}[A-Z]$, único entre los socios que lo tienen
	Passport  string
	Email     string // siempre en minúsculas
	Type      PartnerType
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
