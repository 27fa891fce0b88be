// seed crea los datos mínimos para un entorno de desarrollo: la cuenta
// maestra, una empresa demo con un admin y un staff, y un puñado de
// equipos de producción audiovisual.
//
// Uso: go run ./cmd/seed
// Credenciales: master@equipos.local / admin@demo.local / staff@demo.local
// (password para todas: "cambiame123").
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Equipos-api/internal/domain/entity"
	"github.com/jhoicas/Equipos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Equipos-api/pkg/config"
)

const seedPassword = "cambiame123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de password: %v\n", err)
		os.Exit(1)
	}
	now := time.Now()

	// 1. Cuenta maestra (sin empresa)
	existing, err := userRepo.GetByEmail("master@equipos.local")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar cuenta maestra: %v\n", err)
		os.Exit(1)
	}
	if existing == nil {
		master := &entity.User{
			ID:           uuid.New().String(),
			Email:        "master@equipos.local",
			Name:         "Cuenta Maestra",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			IsMaster:     true,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(master); err != nil {
			fmt.Fprintf(os.Stderr, "Crear cuenta maestra: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cuenta maestra creada: master@equipos.local")
	} else {
		fmt.Println("Cuenta maestra ya existe, se omite")
	}

	// 2. Empresa demo
	company, err := companyRepo.GetByTaxID("900123456")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar empresa demo: %v\n", err)
		os.Exit(1)
	}
	if company == nil {
		company = &entity.Company{
			ID:        uuid.New().String(),
			Name:      "Producciones Demo SAS",
			TaxID:     "900123456",
			Address:   "Calle 100 #10-20, Bogotá",
			Phone:     "+57 300 000 0000",
			Email:     "contacto@demo.local",
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := companyRepo.Create(company); err != nil {
			fmt.Fprintf(os.Stderr, "Crear empresa demo: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Empresa demo creada: Producciones Demo SAS")
	} else {
		fmt.Println("Empresa demo ya existe, se omite")
	}

	// 3. Usuarios de la empresa demo
	seedUsers := []struct {
		email, name, role string
	}{
		{"admin@demo.local", "Admin Demo", entity.RoleAdmin},
		{"staff@demo.local", "Staff Demo", entity.RoleStaff},
	}
	for _, su := range seedUsers {
		found, err := userRepo.GetByEmail(su.email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Consultar usuario %s: %v\n", su.email, err)
			os.Exit(1)
		}
		if found != nil {
			fmt.Printf("Usuario %s ya existe, se omite\n", su.email)
			continue
		}
		u := &entity.User{
			ID:           uuid.New().String(),
			CompanyID:    company.ID,
			Email:        su.email,
			Name:         su.name,
			PasswordHash: string(hash),
			Role:         su.role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(u); err != nil {
			fmt.Fprintf(os.Stderr, "Crear usuario %s: %v\n", su.email, err)
			os.Exit(1)
		}
		fmt.Printf("Usuario creado: %s (%s)\n", su.email, su.role)
	}

	// 4. Equipos de ejemplo
	seedEquipments := []struct {
		name, code, category string
	}{
		{"Cámara Sony FX6", "CAM001", "Cámara"},
		{"Cámara Sony FX3", "CAM002", "Cámara"},
		{"Trípode Manfrotto 504X", "TRI001", "Soporte"},
		{"Kit luces Aputure 300D", "LUZ001", "Iluminación"},
		{"Micrófono Sennheiser MKH416", "MIC001", "Audio"},
	}
	for _, se := range seedEquipments {
		found, err := equipmentRepo.GetByCode(company.ID, se.code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Consultar equipo %s: %v\n", se.code, err)
			os.Exit(1)
		}
		if found != nil {
			fmt.Printf("Equipo %s ya existe, se omite\n", se.code)
			continue
		}
		e := &entity.Equipment{
			ID:        uuid.New().String(),
			CompanyID: company.ID,
			Name:      se.name,
			Code:      se.code,
			Category:  se.category,
			Status:    entity.StatusAvailable,
			Holder:    entity.DefaultStockLocation,
			UpdatedAt: now,
		}
		if err := equipmentRepo.Create(e); err != nil {
			fmt.Fprintf(os.Stderr, "Crear equipo %s: %v\n", se.code, err)
			os.Exit(1)
		}
		fmt.Printf("Equipo creado: %s (%s)\n", se.name, se.code)
	}

	fmt.Println("Seed completado")
}
