package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rackd/rackd/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage authentication tokens",
	Long:  `Generate bearer tokens for API access when authentication is enabled`,
}

var generateTokenCmd = &cobra.Command{
	Use:   "generate [name]",
	Short: "Generate a bearer token",
	Long: `Generate a JWT bearer token for the named principal.

The token is signed with security.jwt_secret from the configuration and
carries the requested role. Operators may modify the inventory; viewers
may only read.

Examples:
  # Operator token for a teammate, valid one week
  rackd token generate alice --role operator --ttl 168h

  # Read-only token for a dashboard
  rackd token generate grafana --role viewer`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerateToken,
}

var (
	tokenTTL    time.Duration
	tokenRole   string
	tokenSecret string
)

func init() {
	generateTokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	generateTokenCmd.Flags().StringVar(&tokenRole, "role", "viewer", "token role (operator, viewer)")
	generateTokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "signing secret (default: from config file)")

	tokenCmd.AddCommand(generateTokenCmd)
}

func runGenerateToken(cmd *cobra.Command, args []string) error {
	name := args[0]

	var role auth.Role
	switch tokenRole {
	case "operator":
		role = auth.RoleOperator
	case "viewer":
		role = auth.RoleViewer
	default:
		return fmt.Errorf("unknown role %q (want operator or viewer)", tokenRole)
	}

	if tokenSecret != "" {
		cfg.Security.JWTSecret = tokenSecret
	}
	if cfg.Security.JWTSecret == "" {
		return fmt.Errorf(`jwt_secret not found in config file and --secret not provided

Please either:
  1. Add to your config.yaml:
     security:
       jwt_secret: your-secret-here

  2. Or use the --secret flag:
     rackd token generate %s --secret "your-secret-here"`, name)
	}

	service := auth.NewJWTService(cfg)
	token, err := service.GenerateToken(name, []auth.Role{role}, tokenTTL)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Printf("Token generated for %s (role: %s, ttl: %s)\n\n", name, role, tokenTTL)
	fmt.Printf("%s\n\n", token)
	fmt.Printf("Pass it as a bearer token:\n")
	fmt.Printf("  curl -H 'Authorization: Bearer <token>' http://localhost:8080/api/v1/cabinets\n")

	return nil
}
