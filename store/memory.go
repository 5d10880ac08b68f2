package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hotel-saas/models"
)

// MemoryStore keeps every table in process memory. It is selected with
// STORE_DRIVER=memory for local runs and backs the handler tests. A single
// mutex serialises access; a transaction holds it for its whole duration and
// restores a snapshot when fn fails.
type MemoryStore struct {
	mu   *sync.Mutex
	data *memData
	inTx bool
}

type memData struct {
	hotels       *table[models.Hotel]
	users        *table[models.User]
	rooms        *table[models.Room]
	guests       *table[models.Guest]
	reservations *table[models.Reservation]
	payments     *table[models.Payment]
	invoices     *table[models.Invoice]
	products     *table[models.Product]
	sales        *table[models.Sale]
	purchases    *table[models.Purchase]
	suppliers    *table[models.Supplier]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mu: &sync.Mutex{},
		data: &memData{
			hotels: newTable(func(h models.Hotel) string { return h.ID }),
			users: newTable(func(u models.User) string {
				if u.HotelID == nil {
					return ""
				}
				return *u.HotelID
			}),
			rooms:        newTable(func(r models.Room) string { return r.HotelID }),
			guests:       newTable(func(g models.Guest) string { return g.HotelID }),
			reservations: newTable(func(r models.Reservation) string { return r.HotelID }),
			payments:     newTable(func(p models.Payment) string { return p.HotelID }),
			invoices:     newTable(func(i models.Invoice) string { return i.HotelID }),
			products:     newTable(func(p models.Product) string { return p.HotelID }),
			sales:        newTable(func(s models.Sale) string { return s.HotelID }),
			purchases:    newTable(func(p models.Purchase) string { return p.HotelID }),
			suppliers:    newTable(func(s models.Supplier) string { return s.HotelID }),
		},
	}
}

func (d *memData) clone() *memData {
	return &memData{
		hotels:       d.hotels.clone(),
		users:        d.users.clone(),
		rooms:        d.rooms.clone(),
		guests:       d.guests.clone(),
		reservations: d.reservations.clone(),
		payments:     d.payments.clone(),
		invoices:     d.invoices.clone(),
		products:     d.products.clone(),
		sales:        d.sales.clone(),
		purchases:    d.purchases.clone(),
		suppliers:    d.suppliers.clone(),
	}
}

func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(&MemoryStore{mu: s.mu, data: s.data, inTx: true}); err != nil {
		*s.data = *snapshot
		return err
	}
	return nil
}

func (s *MemoryStore) guard() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// table is an insertion-ordered map of rows keyed by id.
type table[T any] struct {
	rows    map[string]T
	order   []string
	hotelOf func(T) string
}

func newTable[T any](hotelOf func(T) string) *table[T] {
	return &table[T]{rows: map[string]T{}, hotelOf: hotelOf}
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{
		rows:    make(map[string]T, len(t.rows)),
		order:   append([]string(nil), t.order...),
		hotelOf: t.hotelOf,
	}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

func (t *table[T]) put(id string, row T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) delete(id string) {
	delete(t.rows, id)
	for i, k := range t.order {
		if k == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

func (t *table[T]) get(hotelID, id string) (*T, error) {
	row, ok := t.rows[id]
	if !ok || t.hotelOf(row) != hotelID {
		return nil, ErrNotFound
	}
	return &row, nil
}

// where returns matching rows in insertion order; the result is never nil.
func (t *table[T]) where(match func(T) bool) []T {
	out := []T{}
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) scoped(hotelID string) []T {
	return t.where(func(row T) bool { return t.hotelOf(row) == hotelID })
}

func (t *table[T]) exists(match func(T) bool) bool {
	for _, row := range t.rows {
		if match(row) {
			return true
		}
	}
	return false
}

func (t *table[T]) deleteWhere(match func(T) bool) {
	for _, id := range append([]string(nil), t.order...) {
		if match(t.rows[id]) {
			t.delete(id)
		}
	}
}

func newestFirst[T any](rows []T) []T {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

func stamp(b *models.Base) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
}

// ----------------------------------------------------
// Hotels and users
// ----------------------------------------------------

func (s *MemoryStore) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	defer s.guard()()
	if s.data.hotels.exists(func(h models.Hotel) bool { return h.Email == hotel.Email }) {
		return duplicate("hotels.email")
	}
	stamp(&hotel.Base)
	s.data.hotels.put(hotel.ID, *hotel)
	return nil
}

func (s *MemoryStore) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	defer s.guard()()
	return s.data.hotels.get(id, id)
}

func (s *MemoryStore) GetHotelByEmail(ctx context.Context, email string) (*models.Hotel, error) {
	defer s.guard()()
	found := s.data.hotels.where(func(h models.Hotel) bool { return h.Email == email })
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return &found[0], nil
}

func (s *MemoryStore) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	defer s.guard()()
	return newestFirst(s.data.hotels.where(func(models.Hotel) bool { return true })), nil
}

func (s *MemoryStore) UpdateHotel(ctx context.Context, id string, columns map[string]any) (*models.Hotel, error) {
	defer s.guard()()
	hotel, err := s.data.hotels.get(id, id)
	if err != nil {
		return nil, err
	}
	if email, ok := columns["email"].(string); ok && email != hotel.Email {
		if s.data.hotels.exists(func(h models.Hotel) bool { return h.Email == email }) {
			return nil, duplicate("hotels.email")
		}
	}
	for col, val := range columns {
		switch col {
		case "name":
			hotel.Name = val.(string)
		case "address":
			hotel.Address = strPtr(val.(string))
		case "phone":
			hotel.Phone = strPtr(val.(string))
		case "email":
			hotel.Email = val.(string)
		case "currency":
			hotel.Currency = val.(string)
		case "plan":
			hotel.Plan = val.(models.HotelPlan)
		case "status":
			hotel.Status = val.(models.HotelStatus)
		}
	}
	s.data.hotels.put(id, *hotel)
	return hotel, nil
}

// DeleteHotel removes the tenant and everything it owns, children first
// like the MySQL store.
func (s *MemoryStore) DeleteHotel(ctx context.Context, id string) error {
	defer s.guard()()
	if _, err := s.data.hotels.get(id, id); err != nil {
		return err
	}
	d := s.data
	d.sales.deleteWhere(func(r models.Sale) bool { return r.HotelID == id })
	d.purchases.deleteWhere(func(r models.Purchase) bool { return r.HotelID == id })
	d.invoices.deleteWhere(func(r models.Invoice) bool { return r.HotelID == id })
	d.payments.deleteWhere(func(r models.Payment) bool { return r.HotelID == id })
	d.reservations.deleteWhere(func(r models.Reservation) bool { return r.HotelID == id })
	d.products.deleteWhere(func(r models.Product) bool { return r.HotelID == id })
	d.suppliers.deleteWhere(func(r models.Supplier) bool { return r.HotelID == id })
	d.guests.deleteWhere(func(r models.Guest) bool { return r.HotelID == id })
	d.rooms.deleteWhere(func(r models.Room) bool { return r.HotelID == id })
	d.users.deleteWhere(func(r models.User) bool { return d.users.hotelOf(r) == id })
	d.hotels.delete(id)
	return nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	defer s.guard()()
	found := s.data.users.where(func(u models.User) bool { return u.Email == email })
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return &found[0], nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	defer s.guard()()
	if s.data.users.exists(func(u models.User) bool { return u.Email == user.Email }) {
		return duplicate("users.email")
	}
	stamp(&user.Base)
	s.data.users.put(user.ID, *user)
	return nil
}

func (s *MemoryStore) GetUser(ctx context.Context, hotelID, id string) (*models.User, error) {
	defer s.guard()()
	return s.data.users.get(hotelID, id)
}

func (s *MemoryStore) ListUsers(ctx context.Context, hotelID string) ([]models.User, error) {
	defer s.guard()()
	return s.data.users.scoped(hotelID), nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, hotelID, id string, patch models.UserPatch) (*models.User, error) {
	defer s.guard()()
	user, err := s.data.users.get(hotelID, id)
	if err != nil {
		return nil, err
	}
	assign(&user.Name, patch.Name)
	assign(&user.Role, patch.Role)
	assign(&user.Active, patch.Active)
	s.data.users.put(id, *user)
	return user, nil
}

// ----------------------------------------------------
// Rooms, guests and reservations
// ----------------------------------------------------

func (s *MemoryStore) GetRoom(ctx context.Context, hotelID, id string) (*models.Room, error) {
	defer s.guard()()
	return s.data.rooms.get(hotelID, id)
}

// LockRoom is a plain read: inside a transaction the store mutex is
// already held.
func (s *MemoryStore) LockRoom(ctx context.Context, hotelID, id string) (*models.Room, error) {
	return s.GetRoom(ctx, hotelID, id)
}

func (s *MemoryStore) ListRooms(ctx context.Context, hotelID string) ([]models.Room, error) {
	defer s.guard()()
	rooms := s.data.rooms.scoped(hotelID)
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].RoomNumber < rooms[j].RoomNumber })
	return rooms, nil
}

func (s *MemoryStore) roomNumberTaken(hotelID, number, exceptID string) bool {
	return s.data.rooms.exists(func(r models.Room) bool {
		return r.HotelID == hotelID && r.RoomNumber == number && r.ID != exceptID
	})
}

func (s *MemoryStore) CreateRoom(ctx context.Context, room *models.Room) error {
	defer s.guard()()
	if s.roomNumberTaken(room.HotelID, room.RoomNumber, "") {
		return duplicate("idx_rooms_hotel_number")
	}
	stamp(&room.Base)
	s.data.rooms.put(room.ID, *room)
	return nil
}

func (s *MemoryStore) UpdateRoom(ctx context.Context, hotelID, id string, patch models.RoomPatch) (*models.Room, error) {
	defer s.guard()()
	room, err := s.data.rooms.get(hotelID, id)
	if err != nil {
		return nil, err
	}
	if patch.RoomNumber != nil && s.roomNumberTaken(hotelID, *patch.RoomNumber, id) {
		return nil, duplicate("idx_rooms_hotel_number")
	}
	assign(&room.RoomNumber, patch.RoomNumber)
	assign(&room.Type, patch.Type)
	assign(&room.PricePerNight, patch.PricePerNight)
	assign(&room.Capacity, patch.Capacity)
	assign(&room.Status, patch.Status)
	if patch.Notes != nil {
		room.Notes = patch.Notes
	}
	s.data.rooms.put(id, *room)
	return room, nil
}

func (s *MemoryStore) DeleteRoom(ctx context.Context, hotelID, id string) error {
	defer s.guard()()
	if _, err := s.data.rooms.get(hotelID, id); err != nil {
		return err
	}
	if s.data.reservations.exists(func(r models.Reservation) bool { return r.RoomID == id }) {
		return referenced("reservations.room_id")
	}
	for _, sale := range s.data.sales.where(func(r models.Sale) bool { return r.RoomID != nil && *r.RoomID == id }) {
		sale.RoomID = nil
		s.data.sales.put(sale.ID, sale)
	}
	s.data.rooms.delete(id)
	return nil
}

func (s *MemoryStore) GetGuest(ctx context.Context, hotelID, id string) (*models.Guest, error) {
	defer s.guard()()
	return s.data.guests.get(hotelID, id)
}

func (s *MemoryStore) ListGuests(ctx context.Context, hotelID string) ([]models.Guest, error) {
	defer s.guard()()
	return newestFirst(s.data.guests.scoped(hotelID)), nil
}

func (s *MemoryStore) CreateGuest(ctx context.Context, guest *models.Guest) error {
	defer s.guard()()
	stamp(&guest.Base)
	s.data.guests.put(guest.ID, *guest)
	return nil
}

func (s *MemoryStore) UpdateGuest(ctx context.Context, hotelID, id string, patch models.GuestPatch) (*models.Guest, error) {
	defer s.guard()()
	guest, err := s.data.guests.get(hotelID, id)
	if err != nil {
		return nil, err
	}
	assign(&guest.Name, patch.Name)
	if patch.Phone != nil {
		guest.Phone = patch.Phone
	}
	if patch.Email != nil {
		guest.Email = patch.Email
	}
	if patch.IDCard != nil {
		guest.IDCard = patch.IDCard
	}
	s.data.guests.put(id, *guest)
	return guest, nil
}

func (s *MemoryStore) GetReservation(ctx context.Context, hotelID, id string) (*models.Reservation, error) {
	defer s.guard()()
	return s.data.reservations.get(hotelID, id)
}

func (s *MemoryStore) ListReservations(ctx context.Context, hotelID string) ([]models.Reservation, error) {
	defer s.guard()()
	out := s.data.reservations.scoped(hotelID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CheckIn.After(out[j].CheckIn) })
	return out, nil
}

func (s *MemoryStore) ListReservationsForRoom(ctx context.Context, hotelID, roomID string, from, to time.Time) ([]models.Reservation, error) {
	defer s.guard()()
	out := s.data.reservations.where(func(r models.Reservation) bool {
		return r.HotelID == hotelID && r.RoomID == roomID && r.CheckOut.After(from) && r.CheckIn.Before(to)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CheckIn.Before(out[j].CheckIn) })
	return out, nil
}

func (s *MemoryStore) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	defer s.guard()()
	stamp(&reservation.Base)
	s.data.reservations.put(reservation.ID, *reservation)
	return nil
}

func (s *MemoryStore) UpdateReservation(ctx context.Context, hotelID, id string, patch models.ReservationPatch) (*models.Reservation, error) {
	defer s.guard()()
	r, err := s.data.reservations.get(hotelID, id)
	if err != nil {
		return nil, err
	}
	assign(&r.RoomID, patch.RoomID)
	assign(&r.GuestID, patch.GuestID)
	assign(&r.CheckIn, patch.CheckIn)
	assign(&r.CheckOut, patch.CheckOut)
	assign(&r.Status, patch.Status)
	assign(&r.TotalAmount, patch.TotalAmount)
	assign(&r.PaymentStatus, patch.PaymentStatus)
	s.data.reservations.put(id, *r)
	return r, nil
}

func (s *MemoryStore) DeleteReservation(ctx context.Context, hotelID, id string) error {
	defer s.guard()()
	if _, err := s.data.reservations.get(hotelID, id); err != nil {
		return err
	}
	for _, p := range s.data.payments.where(func(p models.Payment) bool {
		return p.ReservationID != nil && *p.ReservationID == id
	}) {
		p.ReservationID = nil
		s.data.payments.put(p.ID, p)
	}
	s.data.reservations.delete(id)
	return nil
}

// ----------------------------------------------------
// Payments and invoices
// ----------------------------------------------------

func (s *MemoryStore) GetPayment(ctx context.Context, hotelID, id string) (*models.Payment, error) {
	defer s.guard()()
	return s.data.payments.get(hotelID, id)
}

func (s *MemoryStore) ListPayments(ctx context.Context, hotelID string) ([]models.Payment, error) {
	defer s.guard()()
	return newestFirst(s.data.payments.scoped(hotelID)), nil
}

func (s *MemoryStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	defer s.guard()()
	stamp(&payment.Base)
	s.data.payments.put(payment.ID, *payment)
	return nil
}

func (s *MemoryStore) UpdatePayment(ctx context.Context, hotelID, id string, patch models.PaymentPatch) (*models.Payment, error) {
	defer s.guard()()
	p, err := s.data.payments.get(hotelID, id)
	if err != nil {
		return nil, err
	}
	assign(&p.Amount, patch.Amount)
	assign(&p.Method, patch.Method)
	assign(&p.Status, patch.Status)
	if patch.Notes != nil {
		p.Notes = patch.Notes
	}
	s.data.payments.put(id, *p)
	return p, nil
}

func (s *MemoryStore) GetInvoice(ctx context.Context, hotelID, id string) (*models.Invoice, error) {
	defer s.guard()()
	return s.data.invoices.get(hotelID, id)
}

func (s *MemoryStore) ListInvoices(ctx context.Context, hotelID string) ([]models.Invoice, error) {
	defer s.guard()()
	return newestFirst(s.data.invoices.scoped(hotelID)), nil
}

func (s *MemoryStore) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	defer s.guard()()
	if s.data.invoices.exists(func(i models.Invoice) bool { return i.InvoiceNumber == invoice.InvoiceNumber }) {
		return duplicate("invoices.invoice_number")
	}
	stamp(&invoice.Base)
	s.data.invoices.put(invoice.ID, *invoice)
	return nil
}

// ----------------------------------------------------
// Inventory
// ----------------------------------------------------

func (s *MemoryStore) GetProduct(ctx context.Context, hotelID, id string) (*models.Product, error) {
	defer s.guard()()
	return s.data.products.get(hotelID, id)
}

func (s *MemoryStore) LockProduct(ctx context.Context, hotelID, id string) (*models.Product, error) {
	return s.GetProduct(ctx, hotelID, id)
}

func (s *MemoryStore) ListProducts(ctx context.Context, hotelID string) ([]models.Product, error) {
	defer s.guard()()
	out := s.data.products.scoped(hotelID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) CreateProduct(ctx context.Context, product *models.Product) error {
	defer s.guard()()
	stamp(&product.Base)
	s.data.products.put(product.ID, *product)
	return nil
}

func (s *MemoryStore) UpdateProduct(ctx context.Context, hotelID, id string, patch models.ProductPatch) (*models.Product, error) {
	defer s.guard()()
	p, err := s.data.products.get(hotelID, id)
	if err != nil {
		return nil, err
	}
	assign(&p.Name, patch.Name)
	assign(&p.Category, patch.Category)
	assign(&p.UnitPrice, patch.UnitPrice)
	assign(&p.AlertThreshold, patch.AlertThreshold)
	assign(&p.Unit, patch.Unit)
	s.data.products.put(id, *p)
	return p, nil
}

func (s *MemoryStore) SetProductStock(ctx context.Context, hotelID, id string, stock decimal.Decimal) error {
	defer s.guard()()
	p, err := s.data.products.get(hotelID, id)
	if err != nil {
		return err
	}
	p.CurrentStock = stock
	s.data.products.put(id, *p)
	return nil
}

func (s *MemoryStore) DeleteProduct(ctx context.Context, hotelID, id string) error {
	defer s.guard()()
	if _, err := s.data.products.get(hotelID, id); err != nil {
		return err
	}
	if s.data.sales.exists(func(r models.Sale) bool { return r.ProductID == id }) {
		return referenced("sales.product_id")
	}
	if s.data.purchases.exists(func(r models.Purchase) bool { return r.ProductID == id }) {
		return referenced("purchases.product_id")
	}
	s.data.products.delete(id)
	return nil
}

func (s *MemoryStore) GetSale(ctx context.Context, hotelID, id string) (*models.Sale, error) {
	defer s.guard()()
	return s.data.sales.get(hotelID, id)
}

func (s *MemoryStore) ListSales(ctx context.Context, hotelID string) ([]models.Sale, error) {
	defer s.guard()()
	return newestFirst(s.data.sales.scoped(hotelID)), nil
}

func (s *MemoryStore) ListSalesByEmployee(ctx context.Context, hotelID, employeeID string) ([]models.Sale, error) {
	defer s.guard()()
	return newestFirst(s.data.sales.where(func(r models.Sale) bool {
		return r.HotelID == hotelID && r.EmployeeID != nil && *r.EmployeeID == employeeID
	})), nil
}

func (s *MemoryStore) CreateSale(ctx context.Context, sale *models.Sale) error {
	defer s.guard()()
	stamp(&sale.Base)
	s.data.sales.put(sale.ID, *sale)
	return nil
}

func (s *MemoryStore) GetPurchase(ctx context.Context, hotelID, id string) (*models.Purchase, error) {
	defer s.guard()()
	return s.data.purchases.get(hotelID, id)
}

func (s *MemoryStore) ListPurchases(ctx context.Context, hotelID string) ([]models.Purchase, error) {
	defer s.guard()()
	return newestFirst(s.data.purchases.scoped(hotelID)), nil
}

func (s *MemoryStore) CreatePurchase(ctx context.Context, purchase *models.Purchase) error {
	defer s.guard()()
	stamp(&purchase.Base)
	s.data.purchases.put(purchase.ID, *purchase)
	return nil
}

func (s *MemoryStore) GetSupplier(ctx context.Context, hotelID, id string) (*models.Supplier, error) {
	defer s.guard()()
	return s.data.suppliers.get(hotelID, id)
}

func (s *MemoryStore) ListSuppliers(ctx context.Context, hotelID string) ([]models.Supplier, error) {
	defer s.guard()()
	out := s.data.suppliers.scoped(hotelID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	defer s.guard()()
	stamp(&supplier.Base)
	s.data.suppliers.put(supplier.ID, *supplier)
	return nil
}

func (s *MemoryStore) UpdateSupplier(ctx context.Context, hotelID, id string, patch models.SupplierPatch) (*models.Supplier, error) {
	defer s.guard()()
	sup, err := s.data.suppliers.get(hotelID, id)
	if err != nil {
		return nil, err
	}
	assign(&sup.Name, patch.Name)
	if patch.Contact != nil {
		sup.Contact = patch.Contact
	}
	if patch.Address != nil {
		sup.Address = patch.Address
	}
	s.data.suppliers.put(id, *sup)
	return sup, nil
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func strPtr(v string) *string { return &v }

func duplicate(key string) error {
	return &keyError{sentinel: ErrDuplicate, key: key}
}

func referenced(key string) error {
	return &keyError{sentinel: ErrReferenced, key: key}
}

type keyError struct {
	sentinel error
	key      string
}

func (e *keyError) Error() string { return e.sentinel.Error() + ": " + e.key }
func (e *keyError) Unwrap() error { return e.sentinel }
