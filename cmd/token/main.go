// Command token emite un JWT firmado con JWT_SECRET para probar las rutas de escritura.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/employee-api/internal/domain/employee"
	"github.com/jhoicas/employee-api/pkg/config"
	"github.com/jhoicas/employee-api/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "operador", "subject del token")
	role := flag.String("role", employee.RoleAdmin, "rol: "+employee.RoleAdmin+" o "+employee.RoleWorker)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if _, err := employee.ValidateRole(*role); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *subject, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
