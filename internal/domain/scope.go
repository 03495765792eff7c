package domain

// GlobalProjectID es el proyecto reservado (id 1): cualquier usuario atado a él
// ve las filas de todos los proyectos. Convención heredada del modelo de datos;
// se mantiene junto al bypass is_admin porque ambos caminos se usan por separado.
const GlobalProjectID int64 = 1

// Scope es el filtro de visibilidad por proyecto que toda lectura aplica.
// All=true significa sin restricción (proyecto global); en otro caso solo
// son visibles las filas cuyo project_id coincide con ProjectID.
type Scope struct {
	ProjectID int64
	All       bool
}

// ScopeForProject calcula el scope del usuario a partir de su project_id.
// Función pura: misma entrada, mismo resultado, sin efectos.
func ScopeForProject(projectID int64) (Scope, error) {
	if projectID <= 0 {
		return Scope{}, ErrUnauthorized
	}
	if projectID == GlobalProjectID {
		return Scope{ProjectID: projectID, All: true}, nil
	}
	return Scope{ProjectID: projectID}, nil
}

// Admits indica si una fila con el project_id dado es visible bajo este scope.
func (s Scope) Admits(projectID int64) bool {
	return s.All || s.ProjectID == projectID
}
