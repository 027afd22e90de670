package controller

import (
	"notekeep-be/internal/pkg/serverutils"
	"notekeep-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	Me(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{userService: userService}
}

func (c *userController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Get("/me", authRequired, c.Me)
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	res, err := c.userService.Profile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
