package pricing

import "github.com/shopspring/decimal"

// Intent una acción del usuario sobre el carrito. Los formularios producen intents y Reduce
// calcula el siguiente snapshot; la vista se vuelve a dibujar desde ese snapshot.
type Intent interface {
	apply(Cart) (Cart, Adjustment, error)
}

// Reduce aplica intent sobre cart. Si el intent falla devuelve el carrito sin cambios.
func Reduce(cart Cart, intent Intent) (Cart, Adjustment, error) {
	next, adj, err := intent.apply(cart)
	if err != nil {
		return cart, Adjustment{}, err
	}
	return next, adj, nil
}

type AddItemIntent struct {
	Product  Product
	Quantity decimal.Decimal
}

func (i AddItemIntent) apply(c Cart) (Cart, Adjustment, error) {
	return c.AddItem(i.Product, i.Quantity)
}

type AddItemsIntent struct {
	Items []LineItem
}

func (i AddItemsIntent) apply(c Cart) (Cart, Adjustment, error) {
	return c.AddItems(i.Items), Adjustment{}, nil
}

type RemoveItemIntent struct {
	ProductID string
}

func (i RemoveItemIntent) apply(c Cart) (Cart, Adjustment, error) {
	return c.RemoveItem(i.ProductID), Adjustment{}, nil
}

type SetQuantityIntent struct {
	ProductID string
	Quantity  decimal.Decimal
}

func (i SetQuantityIntent) apply(c Cart) (Cart, Adjustment, error) {
	return c.UpdateQuantity(i.ProductID, i.Quantity)
}

type SetDiscountPercentIntent struct {
	ProductID string
	Percent   decimal.Decimal
}

func (i SetDiscountPercentIntent) apply(c Cart) (Cart, Adjustment, error) {
	return c.SetDiscountPercent(i.ProductID, i.Percent)
}

type SetUnitPriceIntent struct {
	ProductID string
	Price     decimal.Decimal
}

func (i SetUnitPriceIntent) apply(c Cart) (Cart, Adjustment, error) {
	return c.SetUnitPrice(i.ProductID, i.Price)
}

// SetCustomerIntent con Customer nil quita el cliente.
type SetCustomerIntent struct {
	Customer *CustomerRef
}

func (i SetCustomerIntent) apply(c Cart) (Cart, Adjustment, error) {
	return c.WithCustomer(i.Customer), Adjustment{}, nil
}

type SetNotesIntent struct {
	Notes string
}

func (i SetNotesIntent) apply(c Cart) (Cart, Adjustment, error) {
	next, adj := c.WithNotes(i.Notes)
	return next, adj, nil
}

type ClearIntent struct{}

func (ClearIntent) apply(c Cart) (Cart, Adjustment, error) {
	return c.Clear(), Adjustment{}, nil
}
