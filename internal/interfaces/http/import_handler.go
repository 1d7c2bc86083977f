package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/usecase"
)

// ImportHandler carga, estado y exportación de la tabla de importaciones.
type ImportHandler struct {
	importUC *usecase.ImportUseCase
	statusUC *usecase.StatusUseCase
	exportUC *usecase.ExportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(importUC *usecase.ImportUseCase, statusUC *usecase.StatusUseCase, exportUC *usecase.ExportUseCase) *ImportHandler {
	return &ImportHandler{importUC: importUC, statusUC: statusUC, exportUC: exportUC}
}

// Upload godoc
// @Summary      Cargar planilla de importaciones
// @Description  Reemplaza todos los registros por el contenido del archivo (xlsx o csv).
// @Description  Requiere las columnas POSICION ARANCELARIA y FOB DOLAR.
// @Tags         importaciones
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Planilla .xlsx o .csv"
// @Success      201   {object}  dto.UploadResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/importaciones/upload [post]
func (h *ImportHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "no se seleccionó ningún archivo (campo 'file')",
		})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "no se pudo leer el archivo",
		})
	}
	defer f.Close()

	res, err := h.importUC.Upload(c.Context(), fh.Filename, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Estado godoc
// @Summary      Estado de la carga
// @Tags         importaciones
// @Produce      json
// @Success      200  {object}  dto.EstadoDTO
// @Router       /api/importaciones/estado [get]
func (h *ImportHandler) Estado(c *fiber.Ctx) error {
	st, err := h.statusUC.Estado(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}

// Export godoc
// @Summary      Exportar la tabla completa a Excel
// @Tags         importaciones
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/importaciones/export [get]
func (h *ImportHandler) Export(c *fiber.Ctx) error {
	file, err := h.exportUC.Spreadsheet(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, file)
}
