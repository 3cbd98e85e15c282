package handlers

import (
	"fmt"
	"log"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/jiraphat04/classroom_booking/configs"
	"github.com/jiraphat04/classroom_booking/notifications"
	"github.com/jiraphat04/classroom_booking/websocket"
)

func GetMyNotifications(c *fiber.Ctx) error {
	actor := currentActor(c)
	list, err := notifications.FindByUser(actor.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(list)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("notificationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification id"})
	}
	if err := notifications.MarkAsRead(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func MarkAllNotificationsRead(c *fiber.Ctx) error {
	actor := currentActor(c)
	if err := notifications.MarkAllAsRead(actor.ID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

func DeleteNotification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("notificationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification id"})
	}
	if err := notifications.Remove(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification deleted"})
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// ServeWs keeps a websocket open per authenticated user so approval,
// rejection and reminder notifications arrive without polling. The first
// client message must be {"type":"auth","token":"..."}.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	log.Printf("WebSocket client authenticated and registered: %s", userID)
	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
