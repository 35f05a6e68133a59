package vehicle

import "time"

// Sentinel values used when a vehicle arrives without a plate.
const (
	NoPlateSentinel = "SEM PLACA"
	NoStateSentinel = "--"
)

// RegistrationSeed is the registration number assigned to the very first
// vehicle when the collection is empty; subsequent auto allocations use
// max(existing)+1.
const RegistrationSeed = 1202890

// VehicleTypes is the fixed set of administrative vehicle categories.
var VehicleTypes = []string{
	"Automóvel", "Motocicleta", "Camioneta", "Caminhonete", "Caminhão",
	"Ônibus", "Cam. Trator", "Triciclo", "Quadriciclo", "Trator de Rodas",
	"Semi-Reboque", "Motoneta", "Microônibus", "Reboque", "Ciclomotor", "Utilitário",
}

// Cities covered by the company's area.
var Cities = []string{"Medianeira", "SMI", "Missal", "Itaipulândia", "Serranópolis"}

// States are the Brazilian UFs plus "EX" (foreign) and the no-plate sentinel.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG",
	"PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE",
	"TO", "EX", NoStateSentinel,
}

// Vehicle is one impounded-vehicle record.
type Vehicle struct {
	ID                 string     `json:"id"`
	RegistrationNumber int64      `json:"registration_number"`
	Plate              string     `json:"plate"`
	State              string     `json:"state"`
	InspectionDate     time.Time  `json:"inspection_date"`
	ReleaseDate        *time.Time `json:"release_date,omitempty"`
	Brand              string     `json:"brand"`
	Model              string     `json:"model"`
	VehicleType        string     `json:"vehicle_type"`
	HasKey             bool       `json:"has_key"`
	ChassisObservation string     `json:"chassis_observation"`
	City               string     `json:"city"`
	BouTrv             string     `json:"bou_trv"`
	HasNoPlate         bool       `json:"has_no_plate"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Released reports whether the vehicle has left the yard.
func (v *Vehicle) Released() bool { return v.ReleaseDate != nil }

// ValidVehicleType reports membership in the fixed category set.
func ValidVehicleType(t string) bool { return contains(VehicleTypes, t) }

// ValidCity reports membership in the fixed municipality set.
func ValidCity(c string) bool { return contains(Cities, c) }

// ValidState reports membership in the UF enumeration.
func ValidState(s string) bool { return contains(States, s) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
