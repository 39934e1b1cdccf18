package domain

import "context"

// Product representa um item do estoque (tabela produto).
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nome"`
	Category string  `json:"categoria"`
	Quantity int     `json:"quantidade"`
	Price    float64 `json:"preco"`
	Location string  `json:"localizacao"`
}

// ProductInput é o payload de produto já validado e normalizado.
type ProductInput struct {
	Name     string
	Category string
	Quantity int
	Price    float64
	Location string
}

// ToProduct cria a entidade a partir do payload validado (sem ID).
func (in ProductInput) ToProduct() Product {
	return Product{
		Name:     in.Name,
		Category: in.Category,
		Quantity: in.Quantity,
		Price:    in.Price,
		Location: in.Location,
	}
}

// ToUpdate converte o payload validado em uma atualização com todos os campos presentes.
func (in ProductInput) ToUpdate() ProductUpdate {
	return ProductUpdate{
		Name:     &in.Name,
		Category: &in.Category,
		Quantity: &in.Quantity,
		Price:    &in.Price,
		Location: &in.Location,
	}
}

// ProductUpdate descreve uma atualização de produto. Campos nil não são alterados.
type ProductUpdate struct {
	Name     *string
	Category *string
	Quantity *int
	Price    *float64
	Location *string
}

// ApplyTo copia para p apenas os campos fornecidos. O ID nunca é alterado.
func (u ProductUpdate) ApplyTo(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
}

// ProductFilter define os filtros de listagem (substring, sem diferenciar maiúsculas).
type ProductFilter struct {
	Name     string
	Category string
}

// StockLevelEntry é a linha dos relatórios de estoque baixo/excesso.
type StockLevelEntry struct {
	Name     string `json:"nome"`
	Quantity int    `json:"quantidade"`
	Location string `json:"localizacao"`
}

// StockReport agrupa os produtos abaixo e acima dos limites configurados.
type StockReport struct {
	LowStock  []StockLevelEntry `json:"low_stock"`
	HighStock []StockLevelEntry `json:"high_stock"`
}

// ProductQuantityEntry é a linha do relatório de produtos.
type ProductQuantityEntry struct {
	Name     string `json:"nome"`
	Quantity int    `json:"quantidade"`
}

// ProductReport lista a quantidade de cada produto e o total em estoque.
type ProductReport struct {
	Products []ProductQuantityEntry `json:"products"`
	Total    int                    `json:"total"`
}

// --- Contratos ---

// ProductRepository é o contrato da camada de acesso a dados de produtos.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]Product, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	FindByName(ctx context.Context, name string) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, update ProductUpdate) (Product, error)
	Delete(ctx context.Context, id int64) error
	AdjustQuantity(ctx context.Context, id int64, delta int) (Product, error)
	LowStock(ctx context.Context, threshold int) ([]Product, error)
	HighStock(ctx context.Context, threshold int) ([]Product, error)
	TotalQuantity(ctx context.Context) (int, error)
	StockSnapshot(ctx context.Context) ([]Product, int, error)
}
