package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"estoque/config"
	"estoque/internal/pkg/database"
	"estoque/migrations"
)

var (
	databaseURL string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Gerencia o schema do banco de estoque",
	Long: `Executa as migrações goose embutidas no binário (tabelas produto, venda e entrega).

Examples:
  migrate up                 # aplica as migrações pendentes
  migrate down               # desfaz a última migração
  migrate status             # lista as migrações e seu estado
  migrate up-to 1            # aplica até a versão informada`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Printf("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
		}
	},
}

// gooseCmd cria um subcomando que repassa seus argumentos ao goose.
func gooseCmd(command, short string, nargs int) *cobra.Command {
	return &cobra.Command{
		Use:   command,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoose(cmd.Context(), command, args...)
		},
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "DSN do PostgreSQL (padrão: DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "exibe o log do goose")

	rootCmd.AddCommand(
		gooseCmd("up", "Aplica todas as migrações pendentes", 0),
		gooseCmd("up-by-one", "Aplica a próxima migração pendente", 0),
		gooseCmd("up-to", "Aplica as migrações até a VERSÃO", 1),
		gooseCmd("down", "Desfaz a última migração", 0),
		gooseCmd("down-to", "Desfaz as migrações até a VERSÃO", 1),
		gooseCmd("redo", "Desfaz e reaplica a última migração", 0),
		gooseCmd("reset", "Desfaz todas as migrações", 0),
		gooseCmd("status", "Exibe o estado das migrações", 0),
		gooseCmd("version", "Exibe a versão atual do schema", 0),
	)
}

func runGoose(ctx context.Context, command string, args ...string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL ou --database-url deve ser informada")
	}

	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, database.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		return fmt.Errorf("goose: falha ao conectar ao DB: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("goose: falha ao fechar o DB: %v", err)
		}
	}()

	// status e version só produzem saída pelo log do goose.
	if !verbose && command != "status" && command != "version" {
		goose.SetLogger(goose.NopLogger())
	}

	if err := migrations.Run(ctx, db, command, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	fmt.Printf("goose %s success\n", command)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
