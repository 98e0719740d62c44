package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hospstock/hospstock-api/internal/application/dto"
	"github.com/hospstock/hospstock-api/internal/application/stock"
	"github.com/hospstock/hospstock-api/internal/domain"
	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/infrastructure/excel"
)

// StockHandler gère l'import, les produits et les mouvements.
type StockHandler struct {
	importUC   *stock.ImportUseCase
	movementUC *stock.RegisterMovementUseCase
	queryUC    *stock.QueryUseCase
}

// NewStockHandler construit le handler.
func NewStockHandler(importUC *stock.ImportUseCase, movementUC *stock.RegisterMovementUseCase, queryUC *stock.QueryUseCase) *StockHandler {
	return &StockHandler{importUC: importUC, movementUC: movementUC, queryUC: queryUC}
}

// Import godoc
// @Summary      Importer le fichier Excel d'initialisation des produits
// @Tags         stock
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "classeur xlsx avec colonnes Entite, Produit, Lot, Date_peremption, Stock_initial"
// @Success      200   {object}  dto.ImportSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/import [post]
func (h *StockHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "fichier 'file' requis"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer f.Close()

	table, err := excel.ReadImportTable(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}

	summary, err := h.importUC.ImportBatch(table)
	if err != nil {
		var schemaErr *domain.SchemaError
		if errors.As(err, &schemaErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SCHEMA", Message: schemaErr.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImportSummaryResponse{Imported: summary.Imported, Skipped: summary.Skipped})
}

// ListProduits godoc
// @Summary      Lister les produits d'une entité
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        entite  query  string  true  "entité (magasin)"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/produits [get]
func (h *StockHandler) ListProduits(c *fiber.Ctx) error {
	entite := c.Query("entite")
	if entite == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paramètre entite requis"})
	}
	products, err := h.queryUC.ListProduits(entite)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Enregistrer un mouvement de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "produit_id, type (Entree|Sortie|Endommage), quantite > 0, service, commentaire"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/mouvements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := h.movementUC.RegisterMovement(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantité strictement positive et type Entree|Sortie|Endommage requis"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produit introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "mouvement enregistré"})
}

// ListMouvements godoc
// @Summary      Journal des mouvements d'une entité
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        entite  query  string  true  "entité (magasin)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/mouvements [get]
func (h *StockHandler) ListMouvements(c *fiber.Ctx) error {
	entite := c.Query("entite")
	if entite == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paramètre entite requis"})
	}
	movements, err := h.queryUC.ListMouvements(entite)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProduitID:   m.ProduitID,
			Type:        m.Type,
			Quantite:    m.Quantite,
			Service:     m.Service,
			TS:          m.TS,
			Commentaire: m.Commentaire,
			Entite:      m.Entite,
			Produit:     m.Produit,
			Lot:         m.Lot,
		})
	}
	return c.JSON(out)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		Entite:         p.Entite,
		Produit:        p.Produit,
		Lot:            p.Lot,
		DatePeremption: p.DatePeremption,
		StockInitial:   p.StockInitial,
		StockActuel:    p.StockActuel,
	}
}
