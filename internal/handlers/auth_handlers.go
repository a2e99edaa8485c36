package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/internal/database"
	"github.com/fluxoapp/fluxo/models"
)

const tokenTTL = 72 * time.Hour

// GenerateToken выпускает JWT с идентификатором пользователя.
func GenerateToken(secret string, userID int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// AuthMiddleware проверяет Bearer-токен и кладёт userID в контекст запроса.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Требуется авторизация"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Недействительный токен"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Недействительный токен"})
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Недействительный токен"})
			return
		}

		c.Set("userID", int(userID))
		c.Next()
	}
}

func currentUserID(c *gin.Context) int {
	return c.GetInt("userID")
}

func RegisterHandler(pool *pgxpool.Pool, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			log.Printf("Ошибка привязки JSON: %v\n", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных. Проверьте введённые значения."})
			return
		}
		if user.Email == "" || user.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email и пароль обязательны"})
			return
		}

		if err := database.RegisterUser(pool, &user); err != nil {
			log.Printf("Ошибка при регистрации пользователя: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка регистрации"})
			return
		}

		token, err := GenerateToken(secret, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка выпуска токена"})
			return
		}

		log.Printf("Пользователь успешно зарегистрирован: ID = %d\n", user.ID)
		c.JSON(http.StatusOK, gin.H{"message": "Пользователь успешно зарегистрирован", "user": user, "token": token})
	}
}

func LoginHandler(pool *pgxpool.Pool, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&credentials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка ввода данных"})
			return
		}

		user, err := database.AuthenticateUser(pool, credentials.Email, credentials.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Ошибка авторизации: неверный email или пароль"})
			return
		}

		token, err := GenerateToken(secret, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка выпуска токена"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Авторизация успешна", "user": user, "token": token})
	}
}
