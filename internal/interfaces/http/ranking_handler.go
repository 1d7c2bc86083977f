package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/ranking"
	"github.com/jhoicas/Importaciones-api/internal/application/usecase"
)

// RankingHandler endpoints del ranking por valor unitario.
type RankingHandler struct {
	uc       *ranking.UseCase
	exportUC *usecase.ExportUseCase
}

// NewRankingHandler construye el handler.
func NewRankingHandler(uc *ranking.UseCase, exportUC *usecase.ExportUseCase) *RankingHandler {
	return &RankingHandler{uc: uc, exportUC: exportUC}
}

// Post godoc
// @Summary      Ranking de registros por valor unitario
// @Description  Devuelve los N de mayor y de menor FOB DOLAR / CANTIDAD que contienen los fragmentos indicados.
// @Tags         ranking
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RankingRequest  true  "Filtros (vacío = sin filtro)"
// @Success      200   {object}  dto.RankingResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ranking [post]
func (h *RankingHandler) Post(c *fiber.Ctx) error {
	var req dto.RankingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
	}
	return h.rank(c, req)
}

// Get godoc
// @Summary      Ranking de registros por valor unitario (query string)
// @Tags         ranking
// @Produce      json
// @Param        posicion    query  string  false  "Fragmento de posición arancelaria"
// @Param        mercaderia  query  string  false  "Fragmento de mercadería"
// @Param        importador  query  string  false  "Fragmento de importador"
// @Success      200  {object}  dto.RankingResultDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ranking [get]
func (h *RankingHandler) Get(c *fiber.Ctx) error {
	var req dto.RankingRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	return h.rank(c, req)
}

func (h *RankingHandler) rank(c *fiber.Ctx, req dto.RankingRequest) error {
	res, err := h.uc.Rank(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// PDF godoc
// @Summary      Reporte PDF del ranking
// @Tags         ranking
// @Produce      application/pdf
// @Param        posicion    query  string  false  "Fragmento de posición arancelaria"
// @Param        mercaderia  query  string  false  "Fragmento de mercadería"
// @Param        importador  query  string  false  "Fragmento de importador"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ranking/pdf [get]
func (h *RankingHandler) PDF(c *fiber.Ctx) error {
	var req dto.RankingRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	file, err := h.exportUC.RankingPDF(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, file)
}

// sendFile responde un archivo como descarga.
func sendFile(c *fiber.Ctx, file *dto.ExportFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Content)
}
