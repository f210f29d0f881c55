package pedidos

import "github.com/jhoicas/Pedidos-api/internal/domain/pricing"

// CapToStock vuelve a limitar la línea de productID a su tope de stock. El motor suma las
// cantidades al repetir un producto sin controlar stock; ese control queda de este lado.
// ok indica si hubo que recortar.
func CapToStock(cart pricing.Cart, productID string) (pricing.Cart, pricing.Adjustment, bool) {
	item, found := cart.Item(productID)
	if !found || !item.MaxQuantity.IsPositive() || item.Quantity.LessThanOrEqual(item.MaxQuantity) {
		return cart, pricing.Adjustment{}, false
	}
	capped, adj, err := cart.UpdateQuantity(productID, item.Quantity)
	if err != nil {
		return cart, pricing.Adjustment{}, false
	}
	return capped, adj, true
}

// ReduceWithStock aplica los intents en orden y devuelve el carrito con todos los ajustes.
// Después de cada alta se recorta la línea al stock disponible.
func ReduceWithStock(cart pricing.Cart, intents []pricing.Intent) (pricing.Cart, []pricing.Adjustment, error) {
	adjustments := make([]pricing.Adjustment, 0, len(intents))
	for _, intent := range intents {
		next, adj, err := pricing.Reduce(cart, intent)
		if err != nil {
			return cart, nil, err
		}
		cart = next
		adjustments = append(adjustments, adj)
		if add, isAdd := intent.(pricing.AddItemIntent); isAdd {
			if capped, capAdj, ok := CapToStock(cart, add.Product.ID); ok {
				cart = capped
				adjustments = append(adjustments, capAdj)
			}
		}
	}
	return cart, adjustments, nil
}
