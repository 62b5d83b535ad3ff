package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newAuthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	ac := NewAuthController(gdb)
	router.POST("/token", ac.Token)
	router.POST("/token/refresh", ac.RefreshToken)
	router.POST("/logout", ac.Logout)
	return router, mock
}

func TestTokenEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("200 issues access and refresh tokens", func(t *testing.T) {
		router, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}).
				AddRow(1, "alice", "alice@x.com", string(hash)))
		mock.ExpectQuery(`INSERT INTO "refresh_tokens"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		recorder := performJSON(t, router, http.MethodPost, "/token", gin.H{
			"username": "alice",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Bearer", body["token_type"])
		assert.NotEmpty(t, body["access_token"])
		assert.NotEmpty(t, body["refresh_token"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("200 when logging in with the email address", func(t *testing.T) {
		router, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .* OR email = .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}).
				AddRow(1, "alice", "alice@x.com", string(hash)))
		mock.ExpectQuery(`INSERT INTO "refresh_tokens"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

		recorder := performJSON(t, router, http.MethodPost, "/token", gin.H{
			"username": "Alice@X.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("401 on wrong password", func(t *testing.T) {
		router, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}).
				AddRow(1, "alice", "alice@x.com", string(hash)))

		recorder := performJSON(t, router, http.MethodPost, "/token", gin.H{
			"username": "alice",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid credentials")
	})

	t.Run("401 on unknown user", func(t *testing.T) {
		router, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}))

		recorder := performJSON(t, router, http.MethodPost, "/token", gin.H{
			"username": "nobody",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRefreshTokenEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	expiry := time.Now().Add(time.Hour)

	t.Run("200 rotates the token", func(t *testing.T) {
		router, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT .* FROM "refresh_tokens" WHERE token = .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "expiration_date"}).
				AddRow(1, 1, "old-token", expiry))
		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
				AddRow(1, "alice", "alice@x.com"))
		mock.ExpectExec(`UPDATE "refresh_tokens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		recorder := performJSON(t, router, http.MethodPost, "/token/refresh", gin.H{
			"refresh_token": "old-token",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.NotEmpty(t, body["refresh_token"])
		assert.NotEqual(t, "old-token", body["refresh_token"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("500 when the rotated token cannot be stored", func(t *testing.T) {
		router, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT .* FROM "refresh_tokens" WHERE token = .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "expiration_date"}).
				AddRow(1, 1, "old-token", expiry))
		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
				AddRow(1, "alice", "alice@x.com"))
		mock.ExpectExec(`UPDATE "refresh_tokens" SET`).
			WillReturnError(assert.AnError)

		recorder := performJSON(t, router, http.MethodPost, "/token/refresh", gin.H{
			"refresh_token": "old-token",
		})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "access_token")
	})

	t.Run("401 on unknown token", func(t *testing.T) {
		router, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT .* FROM "refresh_tokens" WHERE token = .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "expiration_date"}))

		recorder := performJSON(t, router, http.MethodPost, "/token/refresh", gin.H{
			"refresh_token": "missing",
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	t.Run("idempotent even for unknown tokens", func(t *testing.T) {
		router, mock := newAuthRouter(t)
		mock.ExpectExec(`DELETE FROM "refresh_tokens"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		recorder := performJSON(t, router, http.MethodPost, "/logout", gin.H{
			"refresh_token": "whatever",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Logged out successfully")
	})
}
