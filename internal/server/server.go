// Package server is the HTTP registration surface.
package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/keuanganbot/keuanganbot/internal/model"
	"github.com/keuanganbot/keuanganbot/internal/notifier"
	"github.com/keuanganbot/keuanganbot/internal/repository"
)

type Server struct {
	users    repository.Users
	validate *validator.Validate
	notifier notifier.Notifier
}

func New(users repository.Users, validate *validator.Validate, notifier notifier.Notifier) *Server {
	return &Server{
		users:    users,
		validate: validate,
		notifier: notifier,
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	api := router.Group("/api")
	api.POST("/register", s.register)
	return router
}

type registerRequest struct {
	Name           string  `json:"name" validate:"required"`
	PhoneNumber    string  `json:"phoneNumber" validate:"required"`
	InitialBalance float64 `json:"initialBalance"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nama dan nomor telepon harus diisi"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nama dan nomor telepon harus diisi"})
		return
	}

	phone := NormalizePhone(req.PhoneNumber)
	if err := s.validate.Var(phone, "numeric,min=10,max=15"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nomor telepon tidak valid"})
		return
	}

	user := &model.User{
		Name:           req.Name,
		PhoneNumber:    phone,
		InitialBalance: req.InitialBalance,
	}
	err := s.users.Create(c.Request.Context(), user)
	if err == repository.DuplicateUserErr {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nomor telepon sudah terdaftar"})
		return
	}
	if err != nil {
		logrus.Errorf("server couldn't register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Terjadi kesalahan saat mendaftarkan pengguna"})
		return
	}

	// best effort; a failed welcome never fails the registration
	go s.sendWelcome(user)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Pendaftaran berhasil! Untuk memulai, silakan kirim '/info' ke nomor bot.",
		"data": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"phoneNumber": user.PhoneNumber,
		},
	})
}

func (s *Server) sendWelcome(user *model.User) {
	text := fmt.Sprintf("*SELAMAT DATANG DI BOT KEUANGAN PRIBADI*\n\nHalo %s,\n\n"+
		"Akun Anda telah berhasil didaftarkan!\n\n"+
		"Gunakan perintah berikut:\n"+
		"- /info - Untuk melihat semua perintah\n"+
		"- /tambah [jumlah], [kategori], [keterangan] - Untuk mencatat pengeluaran\n"+
		"- /masuk [jumlah], [kategori], [keterangan] - Untuk mencatat pemasukan\n"+
		"- /saldo - Untuk melihat saldo saat ini\n"+
		"- /laporan - Untuk melihat laporan transaksi", user.Name)
	if err := s.notifier.SendText(user.PhoneNumber, text); err != nil {
		logrus.Errorf("server couldn't send welcome message to %s: %v", user.PhoneNumber, err)
	}
}

// NormalizePhone strips a leading "+" and forces the 62 country prefix,
// replacing a leading "0" when present
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if strings.HasPrefix(phone, "0") {
		return "62" + phone[1:]
	}
	if !strings.HasPrefix(phone, "62") {
		return "62" + phone
	}
	return phone
}
