package pipeline

import (
	"fmt"
	"strings"
)

// Stage etapa del pipeline comercial de un negocio (deal).
type Stage string

// Etapas del pipeline (deben coincidir con el CHECK de la tabla deals).
const (
	StageBuildProposal   Stage = "build_proposal"
	StagePitchProposal   Stage = "pitch_proposal"
	StageNegotiation     Stage = "negotiation"
	StageAwaitingSignoff Stage = "awaiting_signoff"
	StageSigned          Stage = "signed"
	StageCancelled       Stage = "cancelled"
	StageLost            Stage = "lost"
)

// Stages orden canónico del pipeline. El orden define los pasos simples
// adelante/atrás; cancelled y lost son estados finales absorbentes.
var Stages = []Stage{
	StageBuildProposal,
	StagePitchProposal,
	StageNegotiation,
	StageAwaitingSignoff,
	StageSigned,
	StageCancelled,
	StageLost,
}

// Tablas de adyacencia explícitas: hacen visible y testeable la regla de
// transición en lugar de inferirla de la posición en el arreglo.
var (
	nextOf     = map[Stage]Stage{}
	previousOf = map[Stage]Stage{}
)

func init() {
	for i := 0; i < len(Stages)-1; i++ {
		nextOf[Stages[i]] = Stages[i+1]
		previousOf[Stages[i+1]] = Stages[i]
	}
}

// Band agrupación de etapas para los totales del resumen.
type Band string

// Bandas del resumen: abiertas, firmadas y terminales negativas.
const (
	BandPotential   Band = "potential"
	BandActual      Band = "actual"
	BandUnavailable Band = "unavailable"
)

// Next devuelve la etapa inmediatamente siguiente a s. ok=false si s es la
// última etapa (o no es válida).
func Next(s Stage) (Stage, bool) {
	n, ok := nextOf[s]
	return n, ok
}

// Previous devuelve la etapa inmediatamente anterior a s. ok=false si s es la
// primera etapa (o no es válida).
func Previous(s Stage) (Stage, bool) {
	p, ok := previousOf[s]
	return p, ok
}

// Valid informa si s es una de las siete etapas del pipeline.
func Valid(s Stage) bool {
	for _, st := range Stages {
		if st == s {
			return true
		}
	}
	return false
}

// Parse convierte un string en Stage, validando contra el pipeline.
func Parse(s string) (Stage, error) {
	st := Stage(s)
	if !Valid(st) {
		return "", fmt.Errorf("etapa desconocida: %q", s)
	}
	return st, nil
}

// BandOf clasifica una etapa en su banda de resumen.
func BandOf(s Stage) Band {
	switch s {
	case StageSigned:
		return BandActual
	case StageCancelled, StageLost:
		return BandUnavailable
	default:
		return BandPotential
	}
}

// Joined devuelve las etapas unidas por ", " (para mensajes de validación).
func Joined() string {
	parts := make([]string, len(Stages))
	for i, s := range Stages {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
