package drugs

// Drug representa un medicamento del catálogo.
// La igualdad es por identidad: dos drugs sin ID nunca son iguales,
// ni siquiera entre sí.
type Drug struct {
	ID   string
	Name string
}

// SameAs compara por identidad persistida.
func (d Drug) SameAs(other Drug) bool {
	if d.ID == "" || other.ID == "" {
		return false
	}
	return d.ID == other.ID
}
