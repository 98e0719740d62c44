package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hospstock/hospstock-api/internal/application/dto"
	"github.com/hospstock/hospstock-api/internal/application/stock"
	"github.com/hospstock/hospstock-api/internal/infrastructure/excel"
)

// ReportHandler gère les deux chemins d'export : classeur récapitulatif et
// rapport PDF de vérification.
type ReportHandler struct {
	reportUC *stock.ReportUseCase
}

// NewReportHandler construit le handler.
func NewReportHandler(reportUC *stock.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// GetRecap godoc
// @Summary      Récapitulatif par produit (totaux recalculés depuis le journal)
// @Tags         rapports
// @Security     Bearer
// @Produce      json
// @Param        entite  query  string  true  "entité (magasin)"
// @Success      200  {array}   dto.RecapRowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/recap [get]
func (h *ReportHandler) GetRecap(c *fiber.Ctx) error {
	entite := c.Query("entite")
	if entite == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paramètre entite requis"})
	}
	recap, err := h.reportUC.BuildRecap(entite)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.RecapRowResponse, 0, len(recap))
	for _, r := range recap {
		out = append(out, dto.RecapRowResponse{
			Produit:        r.Produit,
			Lot:            r.Lot,
			DatePeremption: r.DatePeremption,
			StockInitial:   r.StockInitial,
			TotalEntrees:   r.TotalEntrees,
			TotalSorties:   r.TotalSorties,
			TotalEndommage: r.TotalEndommage,
			StockActuel:    r.StockActuel,
		})
	}
	return c.JSON(out)
}

// ExportRapport godoc
// @Summary      Générer le classeur Excel Récapitulatif/Mouvements/Produits
// @Tags         rapports
// @Security     Bearer
// @Produce      json
// @Param        entite  query  string  true  "entité (magasin)"
// @Success      201  {object}  dto.ExportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/rapport [post]
func (h *ReportHandler) ExportRapport(c *fiber.Ctx) error {
	entite := c.Query("entite")
	if entite == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paramètre entite requis"})
	}
	path, err := h.reportUC.ExportWorkbook(entite)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ExportResponse{Fichier: path})
}

// RenderVerification godoc
// @Summary      Générer le rapport PDF de vérification depuis un tableau annoté
// @Description  Le fichier fourni est un classeur annoté à la main (colonnes
//               Produit, Qté théorique, Qté réelle, Écart, Sorties, Statut,
//               Commentaire) ; il est indépendant du grand livre.
// @Tags         rapports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        entite  formData  string  true  "entité (magasin)"
// @Param        file    formData  file    true  "classeur xlsx annoté"
// @Success      201  {object}  dto.ExportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/rapport-verification [post]
func (h *ReportHandler) RenderVerification(c *fiber.Ctx) error {
	entite := c.FormValue("entite")
	if entite == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "champ entite requis"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "fichier 'file' requis"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer f.Close()

	table, err := excel.ReadVerificationTable(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	path, err := h.reportUC.RenderVerification(table, entite)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ExportResponse{Fichier: path})
}
