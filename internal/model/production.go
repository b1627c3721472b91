package model

import "time"

// RawProductionRow is one row returned by the usp_fato_producao stored
// procedure. Timestamps arrive as warehouse-formatted strings and numeric
// columns may be NULL; normalization into ProductionRecord happens in the
// report package.
type RawProductionRow struct {
	TripID         string   `gorm:"column:cod_viagem"`
	Origin         string   `gorm:"column:nome_origem"`
	Destination    string   `gorm:"column:nome_destino"`
	Operation      string   `gorm:"column:nome_operacao"`
	OperationClass string   `gorm:"column:nome_tipo_operacao_modelo"`
	Equipment      string   `gorm:"column:nome_equipamento_utilizado"`
	CycleMinutes   *float64 `gorm:"column:tempo_ciclo_minuto"`
	Volume         *float64 `gorm:"column:volume"`
	Mass           *float64 `gorm:"column:massa"`
	DMTLoaded      *float64 `gorm:"column:dmt_mov_cheio"`
	DMTEmpty       *float64 `gorm:"column:dmt_mov_vazio"`
	SpeedLoaded    *float64 `gorm:"column:velocidade_media_cheio"`
	SpeedEmpty     *float64 `gorm:"column:velocidade_media_vazio"`
	LoadLatitude   *float64 `gorm:"column:latitude_carregamento"`
	LoadLongitude  *float64 `gorm:"column:longitude_carregamento"`
	DumpLatitude   *float64 `gorm:"column:latitude_basculamento"`
	DumpLongitude  *float64 `gorm:"column:longitude_basculamento"`
	ShiftDate      string   `gorm:"column:dt_registro_turno"`
	EndedAt        string   `gorm:"column:dt_registro_fim"`
}

// ProductionRecord is a normalized production-feed row. TripID is only
// unique within a query window; treat it as an opaque grouping key.
type ProductionRecord struct {
	TripID         string
	Origin         string
	Destination    string
	Operation      string
	OperationClass string
	Equipment      string
	CycleMinutes   float64
	Volume         float64
	Mass           float64
	DMTLoaded      float64
	DMTEmpty       float64
	SpeedLoaded    float64
	SpeedEmpty     float64
	ShiftDate      time.Time
	EndedAt        time.Time
}

// RawHourRow is one row returned by the usp_fato_hora stored procedure.
type RawHourRow struct {
	Equipment     string   `gorm:"column:nome_equipamento"`
	Model         string   `gorm:"column:nome_modelo"`
	EquipmentType string   `gorm:"column:nome_tipo_equipamento"`
	State         string   `gorm:"column:nome_estado"`
	StateType     string   `gorm:"column:nome_tipo_estado"`
	TripID        string   `gorm:"column:cod_viagem"`
	EntryID       string   `gorm:"column:id_lancamento"`
	Hours         *float64 `gorm:"column:tempo_hora"`
	Minutes       *float64 `gorm:"column:tempo_minuto"`
	RecordedAt    string   `gorm:"column:dt_registro"`
	ShiftDate     string   `gorm:"column:dt_registro_turno"`
}

// HourRecord is a normalized hourly-state row. State is free text bucketed
// into StateType by the warehouse, not by this pipeline.
type HourRecord struct {
	Equipment     string
	Model         string
	EquipmentType string
	State         string
	StateType     string
	TripID        string
	EntryID       string
	Hours         float64
	Minutes       float64
	RecordedAt    time.Time
	ShiftDate     time.Time
}
