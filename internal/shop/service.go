// Package shop is the command layer over the catalog. It owns the catalog and
// the shop view's selection, runs every command to completion under one lock,
// and notifies observers after each committed change.
package shop

import (
	"context"
	"sync"

	"github.com/osse101/ShopKeeper_Go/internal/catalog"
	"github.com/osse101/ShopKeeper_Go/internal/domain"
	"github.com/osse101/ShopKeeper_Go/internal/economy"
	"github.com/osse101/ShopKeeper_Go/internal/event"
	"github.com/osse101/ShopKeeper_Go/internal/item"
	"github.com/osse101/ShopKeeper_Go/internal/logger"
	"github.com/osse101/ShopKeeper_Go/internal/metrics"
	"github.com/osse101/ShopKeeper_Go/internal/validation"
)

// Service defines the interface for shop operations
type Service interface {
	ListItems(ctx context.Context) []ItemView
	GetItem(ctx context.Context, id string) (ItemView, error)
	AddItem(ctx context.Context, form validation.ItemForm) (ItemView, error)
	EditItem(ctx context.Context, id string, form validation.ItemForm) (ItemView, error)
	DeleteItem(ctx context.Context, id string) error
	BuyItem(ctx context.Context, id string) (Receipt, error)

	Select(ctx context.Context, id string) (SelectionView, error)
	ClearSelection(ctx context.Context) SelectionView
	Selection(ctx context.Context) SelectionView
	BuySelected(ctx context.Context) (Receipt, error)

	Import(ctx context.Context, data []byte) ([]ItemView, error)
	ImportFile(ctx context.Context, path string) ([]ItemView, error)
	Export(ctx context.Context) ([]byte, error)
	ExportFile(ctx context.Context, path string) error
}

type service struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	selected string
	bus      event.Bus
	loader   item.Loader
}

// NewService creates a new shop service around an existing catalog
func NewService(cat *catalog.Catalog, bus event.Bus, loader item.Loader) Service {
	return &service{
		catalog: cat,
		bus:     bus,
		loader:  loader,
	}
}

func (s *service) ListItems(ctx context.Context) []ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return newItemViews(s.catalog.ExportAll())
}

func (s *service) GetItem(ctx context.Context, id string) (ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.catalog.Get(id)
	if err != nil {
		return ItemView{}, err
	}
	return newItemView(it), nil
}

func (s *service) AddItem(ctx context.Context, form validation.ItemForm) (ItemView, error) {
	log := logger.FromContext(ctx)

	candidate, err := form.ToItem()
	if err != nil {
		log.Debug(LogMsgFormRejected, "error", err)
		return ItemView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := s.catalog.Add(candidate)
	log.Info(LogMsgItemAdded, "item_id", added.ID, "name", added.Name)

	s.publish(ctx, event.NewListChangedEvent(domain.ChangeReasonAdded, added.ID, s.catalog.Len()))
	return newItemView(added), nil
}

func (s *service) EditItem(ctx context.Context, id string, form validation.ItemForm) (ItemView, error) {
	log := logger.FromContext(ctx)

	candidate, err := form.ToItem()
	if err != nil {
		log.Debug(LogMsgFormRejected, "item_id", id, "error", err)
		return ItemView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.Replace(id, candidate); err != nil {
		return ItemView{}, err
	}
	edited, err := s.catalog.Get(id)
	if err != nil {
		return ItemView{}, err
	}
	log.Info(LogMsgItemEdited, "item_id", id, "name", edited.Name)

	s.publish(ctx, event.NewListChangedEvent(domain.ChangeReasonEdited, id, s.catalog.Len()))
	if s.selected == id {
		s.publish(ctx, event.NewSelectionChangedEvent(id, economy.CanPurchase(edited)))
	}
	return newItemView(edited), nil
}

func (s *service) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.Remove(id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgItemDeleted, "item_id", id)

	s.publish(ctx, event.NewListChangedEvent(domain.ChangeReasonDeleted, id, s.catalog.Len()))
	if s.selected == id {
		s.clearSelectionLocked(ctx)
	}
	return nil
}

func (s *service) BuyItem(ctx context.Context, id string) (Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buyLocked(ctx, id)
}

func (s *service) BuySelected(ctx context.Context) (Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		return Receipt{}, domain.ErrNoSelection
	}
	return s.buyLocked(ctx, s.selected)
}

// buyLocked runs the purchase on a copy and commits it by ID, so the stored
// entry is replaced even when another item holds identical values.
func (s *service) buyLocked(ctx context.Context, id string) (Receipt, error) {
	log := logger.FromContext(ctx)

	before, err := s.catalog.Get(id)
	if err != nil {
		return Receipt{}, err
	}

	after := before
	result := economy.Purchase(&after)

	if result.Status != domain.PurchaseOutOfStock {
		if err := s.catalog.Replace(id, after); err != nil {
			return Receipt{}, err
		}
		log.Info(LogMsgItemPurchased, "item_id", id, "status", result.Status, "remaining", after.Quantity)
	} else {
		log.Info(LogMsgPurchaseRejected, "item_id", id)
	}

	s.publish(ctx, event.NewItemPurchasedEvent(after, result))
	if result.Status != domain.PurchaseOutOfStock {
		s.publish(ctx, event.NewListChangedEvent(domain.ChangeReasonPurchased, id, s.catalog.Len()))
		if s.selected == id {
			s.publish(ctx, event.NewSelectionChangedEvent(id, economy.CanPurchase(after)))
		}
	}

	title, msg := PurchaseNotice(before, result)
	return Receipt{
		Item:    newItemView(after),
		Result:  result,
		Title:   title,
		Message: msg,
	}, nil
}

func (s *service) Select(ctx context.Context, id string) (SelectionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.catalog.Get(id)
	if err != nil {
		return SelectionView{}, err
	}

	s.selected = id
	logger.FromContext(ctx).Debug(LogMsgSelectionChanged, "item_id", id)
	s.publish(ctx, event.NewSelectionChangedEvent(id, economy.CanPurchase(it)))
	return selectionView(&it, s.catalog.IndexOf(id)), nil
}

func (s *service) ClearSelection(ctx context.Context) SelectionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != "" {
		s.clearSelectionLocked(ctx)
	}
	return selectionView(nil, -1)
}

func (s *service) Selection(ctx context.Context) SelectionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		return selectionView(nil, -1)
	}
	it, err := s.catalog.Get(s.selected)
	if err != nil {
		s.selected = ""
		return selectionView(nil, -1)
	}
	return selectionView(&it, s.catalog.IndexOf(s.selected))
}

func (s *service) clearSelectionLocked(ctx context.Context) {
	s.selected = ""
	logger.FromContext(ctx).Debug(LogMsgSelectionCleared)
	s.publish(ctx, event.NewSelectionChangedEvent("", false))
}

func selectionView(it *domain.Item, index int) SelectionView {
	if it == nil {
		return SelectionView{Index: -1, Details: NoSelectionHint}
	}
	view := newItemView(*it)
	return SelectionView{
		Item:    &view,
		Index:   index,
		Details: Details(*it),
		CanBuy:  view.CanBuy,
	}
}

func (s *service) Import(ctx context.Context, data []byte) ([]ItemView, error) {
	items, err := item.Import(data)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgImportFailed, "error", err)
		metrics.RecordFileOperation(metrics.OperationImport, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceAllLocked(ctx, items), nil
}

func (s *service) ImportFile(ctx context.Context, path string) ([]ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loader.Load(ctx, path)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgImportFailed, "path", path, "error", err)
		metrics.RecordFileOperation(metrics.OperationImport, err)
		return nil, err
	}

	return s.replaceAllLocked(ctx, items), nil
}

// replaceAllLocked swaps in a fully decoded list. Failed imports never get here,
// so the catalog is either untouched or entirely replaced.
func (s *service) replaceAllLocked(ctx context.Context, items []domain.Item) []ItemView {
	stored := s.catalog.ImportAll(items)
	metrics.RecordFileOperation(metrics.OperationImport, nil)
	logger.FromContext(ctx).Info(LogMsgCatalogImported, "count", len(stored))

	s.publish(ctx, event.NewListChangedEvent(domain.ChangeReasonImported, "", len(stored)))
	if s.selected != "" {
		s.clearSelectionLocked(ctx)
	}
	return newItemViews(stored)
}

func (s *service) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := item.Export(s.catalog.ExportAll())
	metrics.RecordFileOperation(metrics.OperationExport, err)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgExportFailed, "error", err)
		return nil, err
	}
	return data, nil
}

func (s *service) ExportFile(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.loader.Save(ctx, path, s.catalog.ExportAll())
	metrics.RecordFileOperation(metrics.OperationExport, err)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgExportFailed, "path", path, "error", err)
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCatalogExported, "path", path, "count", s.catalog.Len())
	return nil
}

// publish notifies observers of a committed change. Observer failures are
// logged and counted but never undo or fail the command.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
