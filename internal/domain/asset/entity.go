package asset

import "time"

// RemovedSector marks a decommissioned item. Assets are never structurally
// deleted in normal flows, only transferred here.
const RemovedSector = "Removido"

// Sectors are the unit's physical locations plus the removal sentinel.
var Sectors = []string{
	"Sargenteação", "Comando", "Subcomando", "Copom e RPA",
	"Cozinha", "Lavanderia", "Banheiros e Lavacar", "Sala de Aula",
	"Rotam", "Academia", "Associação", RemovedSector,
}

// Classes is the fixed asset classification table.
var Classes = []string{
	"Mobiliário em geral",
	"Aparelhos e utensílios domésticos",
	"Equipamentos de processamento de dados",
	"Aparelhos e equipamentos para esporte e diversão",
	"Aparelhos ou equipamentos ou utensílios de médico-odontológico-hospitalar",
	"Equipamentos de proteção-segurança-socorro",
	"Equipamentos para áudio-vídeo-imagem",
	"Máquinas e equipamentos energéticos",
	"Máquinas e equipamentos agrícolas e rodoviários",
}

// ConservationStates, ordered best to worst.
var ConservationStates = []string{"Novo", "Bom", "Regular", "Ruim", "Inservível"}

// IncorporationTypes distinguishes purchased from donated property.
var IncorporationTypes = []string{"Aquisição/compra", "Doação"}

// Transfer is one entry of the append-only sector reassignment log.
type Transfer struct {
	FromSector string    `json:"from_sector"`
	ToSector   string    `json:"to_sector"`
	Date       time.Time `json:"date"`
	Reason     string    `json:"reason,omitempty"`
}

// Asset is one unit-property record.
type Asset struct {
	ID                string     `json:"id"`
	Sector            string     `json:"sector"`
	GeneralTag        string     `json:"general_tag"`
	LocalTag          string     `json:"local_tag"`
	Description       string     `json:"description"`
	AssetClass        string     `json:"asset_class"`
	ConservationState string     `json:"conservation_state"`
	AcquisitionDate   time.Time  `json:"acquisition_date"`
	IncorporationType string     `json:"incorporation_type"`
	AcquisitionValue  float64    `json:"acquisition_value"`
	EvaluationValue   float64    `json:"evaluation_value"`
	NetValue          float64    `json:"net_value"`
	TransferHistory   []Transfer `json:"transfer_history"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func ValidSector(s string) bool            { return contains(Sectors, s) }
func ValidClass(c string) bool             { return contains(Classes, c) }
func ValidConservationState(s string) bool { return contains(ConservationStates, s) }
func ValidIncorporationType(t string) bool { return contains(IncorporationTypes, t) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
