package db

import (
	"errors"
	"gorm.io/gorm"
	"railway-booking-server/internals"
	"railway-booking-server/model"
)

type RouteDAO struct {
	db *gorm.DB
}

func NewRouteDAO(db *gorm.DB) *RouteDAO {
	return &RouteDAO{db: db}
}

func (routeDAO *RouteDAO) CreateRoute(request model.RouteRequest) (model.Route, error) {
	err := internals.ValidateRoute(request.Source, request.Destination, request.Distance)
	if err != nil {
		return model.Route{}, err
	}

	// both stations must exist
	stationDAO := NewStationDAO(routeDAO.db)
	source, err := stationDAO.GetStationById(request.Source)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Route{}, &internals.FieldError{Field: "source", Message: "station does not exist"}
	}
	if err != nil {
		return model.Route{}, err
	}
	destination, err := stationDAO.GetStationById(request.Destination)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Route{}, &internals.FieldError{Field: "destination", Message: "station does not exist"}
	}
	if err != nil {
		return model.Route{}, err
	}

	route := model.Route{
		SourceID:      source.StationID,
		DestinationID: destination.StationID,
		Distance:      request.Distance,
	}
	result := routeDAO.db.Create(&route)
	if result.Error != nil {
		return model.Route{}, result.Error
	}

	route.Source = &source
	route.Destination = &destination
	return route, nil
}

func (routeDAO *RouteDAO) GetRoutes() ([]model.Route, error) {
	var routes []model.Route
	result := routeDAO.db.Order("id_route").Find(&routes)
	if result.Error != nil {
		return nil, result.Error
	}

	err := routeDAO.injectStations(routes)
	if err != nil {
		return nil, err
	}
	return routes, nil
}

func (routeDAO *RouteDAO) GetRouteById(routeID int) (model.Route, error) {
	var route model.Route
	result := routeDAO.db.First(&route, routeID)
	if result.Error != nil {
		return model.Route{}, result.Error
	}

	routes := []model.Route{route}
	err := routeDAO.injectStations(routes)
	if err != nil {
		return model.Route{}, err
	}
	return routes[0], nil
}

// getRoutesByIds returns the routes with their stations, keyed by id
func (routeDAO *RouteDAO) getRoutesByIds(routeIDs []int) (map[int]model.Route, error) {
	var routes []model.Route
	if len(routeIDs) > 0 {
		result := routeDAO.db.Where("id_route IN ?", routeIDs).Find(&routes)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	err := routeDAO.injectStations(routes)
	if err != nil {
		return nil, err
	}

	byId := make(map[int]model.Route, len(routes))
	for _, route := range routes {
		byId[route.RouteID] = route
	}
	return byId, nil
}

// injectStations loads source and destination of the routes with a single query
func (routeDAO *RouteDAO) injectStations(routes []model.Route) error {
	if len(routes) == 0 {
		return nil
	}

	stationIDs := make([]int, 0, 2*len(routes))
	for _, route := range routes {
		stationIDs = append(stationIDs, route.SourceID, route.DestinationID)
	}

	var stations []model.Station
	err := routeDAO.db.Where("id_station IN ?", stationIDs).Find(&stations).Error
	if err != nil {
		return err
	}

	byId := make(map[int]model.Station, len(stations))
	for _, station := range stations {
		byId[station.StationID] = station
	}
	for i := range routes {
		if source, found := byId[routes[i].SourceID]; found {
			routes[i].Source = &source
		}
		if destination, found := byId[routes[i].DestinationID]; found {
			routes[i].Destination = &destination
		}
	}
	return nil
}

// DeleteRoute removes the route, its journeys and their tickets
func (routeDAO *RouteDAO) DeleteRoute(routeID int) error {
	result := routeDAO.db.Delete(&model.Route{}, routeID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
