package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/jiraphat04/classroom_booking/configs"
	"github.com/jiraphat04/classroom_booking/models"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// StaffRequired admits STAFF and DEPARTMENT_HEAD, the staff-equivalent
// roles with approval rights.
func StaffRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := roleFromToken(c)
		if role != models.RoleStaff && role != models.RoleDepartmentHead {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Staff access required",
			})
		}
		return c.Next()
	}
}

func TeacherOrStaffRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := roleFromToken(c)
		if role != models.RoleTeacher && role != models.RoleStaff && role != models.RoleDepartmentHead {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Teacher or staff access required",
			})
		}
		return c.Next()
	}
}

func roleFromToken(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return role
}
