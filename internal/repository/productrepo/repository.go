package productrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/database"
	"estoque/internal/pkg/logger"
)

const (
	table             = "produto"
	msgInvalidProduct = "Payload inválido. Verifique os campos informados."
)

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id", "nome", "categoria", "quantidade", "preco", "localizacao"}
)

// ProductRepository implementa a interface domain.ProductRepository sobre PostgreSQL.
type ProductRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Price, &p.Location)
	return p, err
}

// likePattern monta o padrão de substring para ILIKE, escapando os curingas do usuário.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func notFound(id int64) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Produto %d não encontrado.", id))
}

// quantityOutOfRange é o erro de uma quantidade que não cabe na coluna INTEGER.
func quantityOutOfRange(msg string) error {
	return apperror.NewFieldValidationError(msg, map[string][]string{
		"quantidade": {"Valor fora da faixa permitida."},
	})
}

// queryer é satisfeito por *sql.DB e *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *ProductRepository) query(ctx context.Context, q queryer, b sq.SelectBuilder, op string) ([]domain.Product, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, apperror.NewInternalError("Falha ao montar consulta de produtos", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao %s no DB.", op), err)
		return nil, apperror.NewDBError(fmt.Sprintf("Falha ao %s", op), err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao ler produto", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError(fmt.Sprintf("Falha ao %s", op), err)
	}
	return products, nil
}

// List devolve os produtos em ordem de ID, com filtros opcionais por nome e categoria
// (substring, sem diferenciar maiúsculas).
func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	b := psql.Select(columns...).From(table).OrderBy("id")
	if filter.Name != "" {
		b = b.Where(sq.ILike{"nome": likePattern(filter.Name)})
	}
	if filter.Category != "" {
		b = b.Where(sq.ILike{"categoria": likePattern(filter.Category)})
	}

	return r.query(ctxTimeout, r.DB, b, "listar produtos")
}

// FindByID busca um produto pelo ID.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Product{}, apperror.NewInternalError("Falha ao montar consulta de produto", err)
	}

	p, err := scanProduct(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, notFound(id)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao buscar produto", err)
	}
	return p, nil
}

// FindByName devolve o primeiro produto (menor ID) com o nome exato.
func (r *ProductRepository) FindByName(ctx context.Context, name string) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := psql.Select(columns...).From(table).
		Where(sq.Eq{"nome": name}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.Product{}, apperror.NewInternalError("Falha ao montar consulta de produto", err)
	}

	p, err := scanProduct(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto %q não encontrado.", name))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto por nome no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao buscar produto", err)
	}
	return p, nil
}

// Create insere o produto e devolve o registro com o ID gerado.
func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := psql.Insert(table).
		Columns("nome", "categoria", "quantidade", "preco", "localizacao").
		Values(product.Name, product.Category, product.Quantity, product.Price, product.Location).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Product{}, apperror.NewInternalError("Falha ao montar inserção de produto", err)
	}

	if err := r.DB.QueryRowContext(ctxTimeout, query, args...).Scan(&product.ID); err != nil {
		if database.IsNumericOutOfRange(err) {
			return domain.Product{}, quantityOutOfRange(msgInvalidProduct)
		}
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao inserir produto", err)
	}

	r.logger.Debug("Produto inserido.", map[string]interface{}{"id": product.ID})
	return product, nil
}

// Update carrega o produto com bloqueio de linha (FOR UPDATE), aplica os campos
// fornecidos e persiste, tudo na mesma transação.
func (r *ProductRepository) Update(ctx context.Context, id int64, update domain.ProductUpdate) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação de atualização de produto.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	selectSQL, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE").ToSql()
	if err != nil {
		return domain.Product{}, apperror.NewInternalError("Falha ao montar consulta de produto", err)
	}

	current, err := scanProduct(tx.QueryRowContext(ctxTimeout, selectSQL, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, notFound(id)
	}
	if err != nil {
		r.logger.Error("Falha ao selecionar produto para atualização.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao buscar produto para atualização", err)
	}

	update.ApplyTo(&current)

	updateSQL, args, err := psql.Update(table).
		SetMap(map[string]interface{}{
			"nome":        current.Name,
			"categoria":   current.Category,
			"quantidade":  current.Quantity,
			"preco":       current.Price,
			"localizacao": current.Location,
		}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Product{}, apperror.NewInternalError("Falha ao montar atualização de produto", err)
	}

	if _, err := tx.ExecContext(ctxTimeout, updateSQL, args...); err != nil {
		if database.IsNumericOutOfRange(err) {
			return domain.Product{}, quantityOutOfRange(msgInvalidProduct)
		}
		r.logger.Error("Falha ao atualizar produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao atualizar produto", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de atualização de produto.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao commitar transação", err)
	}

	return current, nil
}

// Delete remove o produto. Produtos ainda referenciados por vendas ou entregas geram Conflict.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return apperror.NewInternalError("Falha ao montar remoção de produto", err)
	}

	result, err := r.DB.ExecContext(ctxTimeout, query, args...)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			r.logger.Warn("Remoção de produto referenciado.", map[string]interface{}{"id": id})
			return apperror.NewConflictError(fmt.Sprintf("Produto %d possui vendas ou entregas registradas.", id))
		}
		r.logger.Error("Falha ao remover produto no DB.", err)
		return apperror.NewDBError("Falha ao remover produto", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if affected == 0 {
		return notFound(id)
	}
	return nil
}

// AdjustQuantity soma delta à quantidade em um único UPDATE atômico.
// Não há piso em zero: o resultado pode ficar negativo.
func (r *ProductRepository) AdjustQuantity(ctx context.Context, id int64, delta int) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := psql.Update(table).
		Set("quantidade", sq.Expr("quantidade + ?", delta)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Product{}, apperror.NewInternalError("Falha ao montar ajuste de estoque", err)
	}

	p, err := scanProduct(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, notFound(id)
	}
	if database.IsNumericOutOfRange(err) {
		r.logger.Warn("Ajuste de estoque fora da faixa.", map[string]interface{}{"id": id, "delta": delta})
		return domain.Product{}, quantityOutOfRange("Quantidade inválida!")
	}
	if err != nil {
		r.logger.Error("Falha ao ajustar estoque no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao ajustar estoque", err)
	}
	return p, nil
}

// LowStock devolve os produtos com quantidade estritamente abaixo de threshold.
func (r *ProductRepository) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	b := psql.Select(columns...).From(table).Where(sq.Lt{"quantidade": threshold}).OrderBy("id")
	return r.query(ctxTimeout, r.DB, b, "listar estoque baixo")
}

// HighStock devolve os produtos com quantidade estritamente acima de threshold.
func (r *ProductRepository) HighStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	b := psql.Select(columns...).From(table).Where(sq.Gt{"quantidade": threshold}).OrderBy("id")
	return r.query(ctxTimeout, r.DB, b, "listar excesso de estoque")
}

func (r *ProductRepository) sumQuantity(ctx context.Context, q queryer) (int, error) {
	query, args, err := psql.Select("COALESCE(SUM(quantidade), 0)").From(table).ToSql()
	if err != nil {
		return 0, apperror.NewInternalError("Falha ao montar soma de estoque", err)
	}

	var total int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.logger.Error("Falha ao somar estoque no DB.", err)
		return 0, apperror.NewDBError("Falha ao somar estoque", err)
	}
	return total, nil
}

// TotalQuantity soma a quantidade de todos os produtos (0 se não houver nenhum).
func (r *ProductRepository) TotalQuantity(ctx context.Context) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.sumQuantity(ctxTimeout, r.DB)
}

// StockSnapshot lê todos os produtos e o total em estoque na mesma transação
// somente leitura, de modo que o total corresponde às linhas devolvidas.
func (r *ProductRepository) StockSnapshot(ctx context.Context) ([]domain.Product, int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		r.logger.Error("Falha ao iniciar transação do relatório de produtos.", err)
		return nil, 0, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	products, err := r.query(ctxTimeout, tx, psql.Select(columns...).From(table).OrderBy("id"), "listar produtos")
	if err != nil {
		return nil, 0, err
	}
	total, err := r.sumQuantity(ctxTimeout, tx)
	if err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, apperror.NewDBError("Falha ao commitar transação", err)
	}
	return products, total, nil
}
