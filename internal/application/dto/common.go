package dto

// DefaultFetchLimit tope de filas de los listados fetch-*.
const DefaultFetchLimit = 150

// DetailResponse cuerpo uniforme de error HTTP: {"detail": "..."}.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDsRequest body para los endpoints fetch-selected-ids.
type IDsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}
