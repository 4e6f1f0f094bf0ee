package types

const (
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionRabbitReconnected       = "rabbitmq_reconnection_success"

	ActionDatasetLoaded  = "dataset_loaded"
	ActionPieUpdate      = "pie_update"
	ActionScatterUpdate  = "scatter_update"
	ActionSessionOpened  = "ws_session_opened"
	ActionSessionClosed  = "ws_session_closed"
	ActionControlChanged = "control_changed"
	ActionViewPublished  = "view_event_published"
)
