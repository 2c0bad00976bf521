// migrate aplica las migraciones goose contra PostgreSQL.
//
// Uso: go run ./cmd/migrate [-dir ruta] <comando> [args]
// Comandos: up, down, status, version, redo, up-to N, down-to N.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jhoicas/Ferreteria-api/pkg/config"
	"github.com/jhoicas/Ferreteria-api/pkg/migrate"
)

func main() {
	dir := flag.String("dir", migrate.DefaultDir, "directorio de migraciones")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "uso: migrate [-dir ruta] <comando> [args]")
		os.Exit(2)
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir conexión: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := migrate.Run(ctx, db, *dir, command, args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "migración: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("migración %q completada\n", command)
}
