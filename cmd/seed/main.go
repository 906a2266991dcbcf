// seed puebla la base con las ubicaciones base del rollout y algunos notebooks
// de ejemplo. Es idempotente: usa ON CONFLICT DO NOTHING sobre las claves únicas.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tu-usuario/rollout-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/rollout-api/pkg/config"
)

var places = []struct {
	name        string
	description string
}{
	{"Estoque", "Depósito central de equipos"},
	{"Sala de Homologação", "Bancada de homologación de imágenes"},
	{"Sala 101", "Puesto de entrega piso 1"},
	{"Sala 202", "Puesto de entrega piso 2"},
	{"Descarte", "Equipos retirados pendientes de baja"},
}

var notebooks = []struct {
	serviceTag string
	hostname   string
}{
	{"ABC123", "NB-ABC123"},
	{"DEF456", "NB-DEF456"},
	{"GHI789", "NB-GHI789"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, p := range places {
		_, err := pool.Exec(ctx, `
			INSERT INTO places (name, description, is_active, created_at, updated_at)
			VALUES ($1, $2, TRUE, NOW(), NOW())
			ON CONFLICT (name) DO NOTHING`,
			p.name, p.description,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar ubicación %s: %v\n", p.name, err)
			os.Exit(1)
		}
	}

	var stockID int64
	if err := pool.QueryRow(ctx, `SELECT id FROM places WHERE name = 'Estoque'`).Scan(&stockID); err != nil {
		fmt.Fprintf(os.Stderr, "resolver ubicación Estoque: %v\n", err)
		os.Exit(1)
	}

	for _, n := range notebooks {
		_, err := pool.Exec(ctx, `
			INSERT INTO notebooks (
				service_tag, hostname, brand, model, notebook_type, ram_config,
				status, place_id, created_at, updated_at
			)
			VALUES ($1, $2, 'Dell', '5450', 'NEW', 'GB16', 'PENDING_HOMOLOGATION', $3, NOW(), NOW())
			ON CONFLICT (service_tag) DO NOTHING`,
			n.serviceTag, n.hostname, stockID,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar notebook %s: %v\n", n.serviceTag, err)
			os.Exit(1)
		}
	}

	fmt.Printf("seed completado: %d ubicaciones, %d notebooks\n", len(places), len(notebooks))
}
