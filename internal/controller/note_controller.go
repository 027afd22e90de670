package controller

import (
	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/serverutils"
	"notekeep-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{noteService: noteService}
}

func (c *noteController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	h := r.Group("/notes")
	h.Use(authRequired)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	res, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindValidation, "malformed request body", err)
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindValidation, "malformed request body", err)
	}

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// noteIdParam rejects non-integer ids as not found, matching the behavior of a
// route constrained to integers.
func noteIdParam(ctx *fiber.Ctx) (int64, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, apperror.NotFound("note not found")
	}
	return int64(id), nil
}
