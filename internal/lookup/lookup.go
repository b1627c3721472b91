// Package lookup carries the contract-fixed tariff tables and warehouse
// vocabulary the report pipeline keys on. Values come from the haulage
// contract's measurement annex and change only on renegotiation.
package lookup

// DMTBandEdges are the right-closed distance band boundaries in meters.
// A haul distance d falls in band i when Edges[i] < d <= Edges[i+1];
// the first band also includes d == 0.
var DMTBandEdges = []float64{0, 500, 1000, 1500, 2000, 2500, 3000, 3500, 4000, 4500, 5000, 5500, 6000, 6500, 7000}

// DMTBandLabels index-aligns with the band between Edges[i] and Edges[i+1].
var DMTBandLabels = []string{
	"0-500", "501-1000", "1001-1500", "1501-2000", "2001-2500",
	"2501-3000", "3001-3500", "3501-4000", "4001-4500", "4501-5000",
	"5001-5500", "5501-6000", "6001-6500", "6501-7000",
}

// Outlier correction thresholds for recorded haul distances.
const (
	DMTOutlierFloor = 50.0
	DMTOutlierCeil  = 7000.0
)

// OreHaulCost and WasteHaulCost are R$/m3 per distance band.
var OreHaulCost = map[string]float64{
	"0-500":     10.9517831011859,
	"501-1000":  11.4656811042058,
	"1001-1500": 11.9061651067943,
	"1501-2000": 12.1631141083042,
	"2001-2500": 12.9494196213316,
	"2501-3000": 14.3882440237018,
	"3001-3500": 16.1468071821542,
	"3501-4000": 17.9053703406067,
	"4001-4500": 19.8238028771002,
	"4501-5000": 22.0619741696761,
	"5001-5500": 24.3001454622519,
	"5501-6000": 26.85805551091,
	"6001-6500": 29.4159655595681,
	"6501-7000": 32.1337449862673,
}

var WasteHaulCost = map[string]float64{
	"0-500":     10.515151785518,
	"501-1000":  10.9135122505256,
	"1001-1500": 11.2756581278053,
	"1501-2000": 11.4929456541731,
	"2001-2500": 11.7102331805409,
	"2501-3000": 11.9637352946367,
	"3001-3500": 12.7757073622779,
	"3501-4000": 14.195230402531,
	"4001-4500": 15.6147534427841,
	"4501-5000": 17.5074508297882,
	"5001-5500": 19.242423434542,
	"5501-6000": 21.2928456037964,
	"6001-6500": 23.3432677730509,
	"6501-7000": 25.3936899423054,
}

// Fixed per-volume rates in R$/m3.
const (
	OreLoadingCost     = 4.90818672114214
	WasteLoadingCost   = 3.72386776463452
	WasteSpreadingCost = 1.58371634448642
)

// ExtraCostLabels name the fixed-rate billing lines as they appear on the
// measurement bulletin.
const (
	OreLoadingLabel     = "Carga de Minério da Mina para Britagem/Pátio"
	WasteLoadingLabel   = "Carga de Estéril para Depósitos/Barragem"
	WasteSpreadingLabel = "Espalhamento de Estéril nos Depósitos"
)

// StoppageHourRate is the 60%-lease hourly rate charged per equipment
// model while a machine is stopped for an externally caused state.
var StoppageHourRate = map[string]float64{
	"ESCAVADEIRA HIDRÁULICA VOLVO EC750DL":      652.784394340166,
	"ESCAVADEIRA HIDRAULICA SANY SY750H":        652.784394340166,
	"ESCAVADEIRA HIDRÁULICA CAT 374DL":          652.784394340166,
	"ESCAVADEIRA HIDRÁULICA CAT 352":            462.241922478712,
	"ESCAVADEIRA HIDRAULICA CAT 336NGX":         299.927964967103,
	"ESCAVADEIRA HIDRÁULICA CAT 320":            229.356679092491,
	"ESCAVADEIRA HIDRÁULICA CAT 320 (ROMPEDOR)": 395.199200897830,
	"PÁ CARREGADEIRA CAT 966L":                  292.870836379642,
	"MOTONIVELADORA CAT 140K":                   257.585193442336,
	"MERCEDES BENZ AROCS 4851/45 8X4":           201.128164742646,
	"VOLVO FMX 500 8X4":                         201.128164742646,
	"MERCEDES BENZ AXOR 3344 6X4 (PIPA)":        165.842521805339,
	"RETRO ESCAVADEIRA CAT 416F2":               151.728264630417,
	"TRATOR DE ESTEIRAS CAT D7":                 504.584694003480,
	"TRATOR DE ESTEIRAS CAT D6T":                335.213607904410,
	"PERFURATRIZ HIDRAULICA SANDVIK DP1500I":    1030.531316241200,
	"PERFURATRIZ HIDRAULICA SANDVIK DX800":      808.111794550188,
	"ESCAVADEIRA HIDRÁULICA VOLVO EC480DL":      839.916000000000,
}

// BillableStoppageStates are the externally caused stoppages the contract
// pays for by the hour.
var BillableStoppageStates = []string{
	"Falta de Frente",
	"Falta de Combustível",
	"Aguardando Geologia",
	"Detonação",
	"Poeira",
}

// State vocabulary used by the fleet-indicator computation.
var (
	WorkingStates = []string{"Operando", "Serviço Auxiliar", "Atraso Operacional"}

	MaintenanceStates = []string{"Manutenção Preventiva", "Manutenção Corretiva", "Manutenção Operacional"}
)

// OutOfFleetStateType marks hours that do not count toward calendar time.
const OutOfFleetStateType = "Fora de Frota"

// Material movement operations as named by the dispatch system.
const (
	OreOperation   = "Movimentação Minério"
	WasteOperation = "Movimentação Estéril"
)

// TransportOperationClass filters the production feed to haul trips.
const TransportOperationClass = "Transporte"

// Equipment model groups reported on the indicator panels.
var (
	ExcavationModels = []string{
		"ESCAVADEIRA HIDRAULICA SANY SY750H",
		"ESCAVADEIRA HIDRÁULICA CAT 352",
		"ESCAVADEIRA HIDRÁULICA CAT 374DL",
		"ESCAVADEIRA HIDRÁULICA VOLVO EC750DL",
	}

	TransportModels = []string{
		"MERCEDES BENZ AROCS 4851/45 8X4",
		"VOLVO FMX 500 8X4",
	}

	DrillingModels = []string{
		"PERFURATRIZ HIDRAULICA SANDVIK DP1500I",
		"PERFURATRIZ HIDRAULICA SANDVIK DX800",
	}
)

// TimelineModels limits the timeline and fleet-board reports to the
// primary dig fleet.
var TimelineModels = ExcavationModels

// ExcludedEquipment never appears on operator-facing boards; it is the
// dispatch system's test rig.
const ExcludedEquipment = "TRIMAK"

// Contains reports whether s is one of the listed warehouse values.
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
