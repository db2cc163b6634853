package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/authenticating"
)

// SeedAdminCmd cria o primeiro administrador, já que POST /v1/users exige um admin autenticado
type SeedAdminCmd struct {
	auth     authenticating.Authenticator
	name     string
	lastname string
	email    string
	password string
}

func NewSeedAdminCmd(auth authenticating.Authenticator) *cobra.Command {
	sc := &SeedAdminCmd{auth: auth}

	cmd := &cobra.Command{
		Use:           "seed-admin",
		Short:         "Cria o usuário administrador inicial",
		RunE:          sc.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&sc.name, "name", "Admin", "Nome do administrador")
	flags.StringVar(&sc.lastname, "lastname", "Sistema", "Sobrenome do administrador")
	flags.StringVar(&sc.email, "email", "", "Email de login")
	flags.StringVar(&sc.password, "password", "", "Senha inicial")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (sc *SeedAdminCmd) run(cmd *cobra.Command, _ []string) error {
	user, err := sc.auth.CreateUser(cmd.Context(), &domain.User{
		Name:         sc.name,
		Lastname:     sc.lastname,
		Email:        sc.email,
		PasswordHash: sc.password,
		RoleID:       domain.RoleAdmin,
	})
	if errors.Is(err, authenticating.ErrUserAlreadyExists) {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "administrador %s já existe\n", sc.email)
		return err
	}
	if err != nil {
		return fmt.Errorf("erro ao criar administrador: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), user)
}
