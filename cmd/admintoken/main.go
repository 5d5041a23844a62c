// Команда admintoken выпускает токен администратора для защищённых маршрутов.
//
//	JWT_SECRET=... admintoken -sub ops -ttl 24h
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/avc-dev/brevly/internal/service"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fset := flag.NewFlagSet("admintoken", flag.ContinueOnError)
	subject := fset.String("sub", "admin", "token subject")
	ttl := fset.Duration("ttl", 24*time.Hour, "token lifetime")
	secret := fset.String("secret", os.Getenv("JWT_SECRET"), "HS256 secret (defaults to JWT_SECRET)")

	if err := fset.Parse(args); err != nil {
		return err
	}

	if *secret == "" {
		return errors.New("JWT secret is required: set JWT_SECRET or -secret")
	}

	token, err := service.NewAuthService(*secret).GenerateAdminToken(*subject, *ttl)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Println(token)
	return nil
}
