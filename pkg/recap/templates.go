package recap

const recapTemplate = `<style>
.recap-container { width: 90%; margin: 0 auto; }
.recap-wrap { display: flex; gap: 24px; align-items: flex-start; flex-wrap: wrap; }
.recap-left { flex: 1 1 320px; min-width: 280px; }
.recap-right { flex: 1 1 380px; min-width: 320px; }
table.proj-mini { border-collapse: collapse; width: 100%; }
table.proj-mini th, table.proj-mini td { border: 1px solid #ddd; padding: 6px 8px; font-size: 0.95rem; }
table.proj-mini thead th { background: #f7f7f7; }
table.proj-mini tr.total td { background: #fafafa; border-top: 2px solid #ccc; }
.recap-skipped { color: #9a6700; }
</style>
<div class="recap-container">
<div class="recap-wrap">
<div class="recap-left">
<h3>Grand Total Hours</h3>
<ul>
<li><strong>Estimated Hours:</strong> {{hours0 .Summary.GrandEstimated}}</li>
<li><strong>Actual Hours:</strong> {{hours2 .Summary.GrandActual}}</li>
</ul>
<h3>As of Today Summary ({{.TodayLabel}})</h3>
<ul>
<li><strong>Estimated Hours:</strong> {{hours1 .Summary.AsOfEstimated}}</li>
<li><strong>Actual Hours:</strong> {{hours2 .Summary.AsOfActual}}</li>
<li><strong>% of Estimated Hours Used:</strong> {{hours1 .Summary.AsOfPercent}}%</li>
</ul>
{{if .Skipped}}
<p class="recap-skipped"><strong>Skipped {{len .Skipped}} projects due to missing start or due dates:</strong></p>
<ul class="recap-skipped">
{{range .Skipped}}<li>{{.}}</li>
{{end}}</ul>
{{end}}
</div>
<div class="recap-right">
{{if .Projects}}
<h3>Project Breakdown</h3>
<table class="proj-mini">
<thead><tr>
<th style="text-align:left">Project</th>
<th style="text-align:right">Budget</th>
<th style="text-align:right">Actual</th>
<th style="text-align:right">Remaining</th>
</tr></thead>
<tbody>
{{range .Projects}}<tr>
<td style="text-align:left">{{.Name}}</td>
<td style="text-align:right">{{hours1 .Budget}}</td>
<td style="text-align:right">{{hours1 .Actual}}</td>
<td style="text-align:right">{{hours1 .Remaining}}</td>
</tr>
{{end}}<tr class="total">
<td style="text-align:left"><strong>{{.Totals.Name}}</strong></td>
<td style="text-align:right"><strong>{{hours1 .Totals.Budget}}</strong></td>
<td style="text-align:right"><strong>{{hours1 .Totals.Actual}}</strong></td>
<td style="text-align:right"><strong>{{hours1 .Totals.Remaining}}</strong></td>
</tr>
</tbody>
</table>
{{end}}
</div>
</div>
</div>
`

const exportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Estimated vs Actual Hours per Week</title>
<script src="https://cdn.plot.ly/plotly-latest.min.js"></script>
<style>
body, .recap-wrap, .recap-wrap * {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, 'Noto Sans', 'Liberation Sans', sans-serif;
}
</style>
</head>
<body>
<div id="weekly-chart"></div>
<script>
var weeks = {{.ChartData}};
var estimated = {
  x: weeks.map(function (w) { return w.week; }),
  y: weeks.map(function (w) { return w.estimated; }),
  name: 'Estimated',
  type: 'bar',
  marker: { color: 'lightgray' }
};
var actual = {
  x: weeks.map(function (w) { return w.week; }),
  y: weeks.map(function (w) { return w.actual; }),
  name: 'Actual',
  type: 'bar',
  opacity: 0.56,
  marker: { color: 'steelblue' }
};
var annotations = weeks.filter(function (w) { return w.actual > 0; }).map(function (w) {
  return {
    x: w.week,
    y: Math.max(w.estimated, w.actual) + 10,
    text: String(w.difference),
    showarrow: false,
    font: { size: 10 },
    yanchor: 'bottom'
  };
});
Plotly.newPlot('weekly-chart', [estimated, actual], {
  barmode: 'overlay',
  title: 'Estimated vs Actual Hours per Week',
  xaxis: { title: 'Week' },
  yaxis: { title: 'Hours' },
  annotations: annotations
});
</script>
<hr>
{{.Recap}}
</body>
</html>
`
